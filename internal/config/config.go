package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config groups the settings of both the API server and the reader.
type Config struct {
	Server ServerConfig
	Reader ReaderConfig
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	reader, err := loadReaderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Reader: reader}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	shutdown, err := parsePositiveSecondsEnv("SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return ServerConfig{}, err
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	addr := port
	if !strings.Contains(port, ":") {
		addr = ":" + port
	}

	return ServerConfig{Addr: addr, ShutdownTimeout: shutdown}, nil
}

// ReaderConfig describes how the reader reaches the API.
type ReaderConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadReaderConfig() (ReaderConfig, error) {
	timeout, err := parsePositiveSecondsEnv("BLOG_API_TIMEOUT_SECONDS", 10)
	if err != nil {
		return ReaderConfig{}, err
	}

	return ReaderConfig{
		BaseURL: strings.TrimRight(getEnvOrDefault("BLOG_API_URL", "http://localhost:8080/api"), "/"),
		Timeout: timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parsePositiveSecondsEnv(key string, defaultSeconds int) (time.Duration, error) {
	seconds, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if seconds == nil {
		return time.Duration(defaultSeconds) * time.Second, nil
	}
	if *seconds <= 0 {
		return 0, fmt.Errorf("invalid %s value %d: must be positive", key, *seconds)
	}
	return time.Duration(*seconds) * time.Second, nil
}
