package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	clilib "github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("[reader] warning: failed to load .env file: %v", err)
	}

	if err := runApp(ctx, os.Args, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func runApp(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	app := &clilib.App{
		Name:   "reader",
		Usage:  "Read the blog API from a terminal",
		Reader: in,
		Writer: out,
		Flags: []clilib.Flag{
			&clilib.StringFlag{Name: "api-url", Usage: "base URL of the blog API (default from BLOG_API_URL)"},
			&clilib.DurationFlag{Name: "timeout", Usage: "per-request timeout (default from BLOG_API_TIMEOUT_SECONDS)"},
			&clilib.StringFlag{Name: "format", Value: formatText, Usage: "output format: text or html"},
			&clilib.BoolFlag{Name: "minify", Usage: "minify html output"},
		},
		Commands: []*clilib.Command{
			ListCommand,
			ShowCommand,
			BrowseCommand,
		},
	}
	return app.RunContext(ctx, args)
}
