package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "SHUTDOWN_TIMEOUT_SECONDS", "BLOG_API_URL", "BLOG_API_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8080/api", cfg.Reader.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Reader.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("BLOG_API_URL", "http://blog.internal/api/")
	t.Setenv("BLOG_API_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "http://blog.internal/api", cfg.Reader.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Reader.Timeout)
}

func TestLoadBarePort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "80 80")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("BLOG_API_TIMEOUT_SECONDS", "soon")
	_, err = Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")
	_, err = Load()
	assert.Error(t, err)
}
