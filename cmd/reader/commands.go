package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	clilib "github.com/urfave/cli/v2"

	"github.com/zhouzirui/z-blog/backend/internal/client"
	"github.com/zhouzirui/z-blog/backend/internal/config"
	"github.com/zhouzirui/z-blog/backend/internal/view"
)

const (
	formatText = "text"
	formatHTML = "html"
)

var (
	errListFailed   = errors.New("could not load posts")
	errDetailFailed = errors.New("could not load post")
)

type renderFunc func(io.Writer, view.State) error

var ListCommand = &clilib.Command{
	Name:  "list",
	Usage: "Print the list of posts",
	Action: func(c *clilib.Context) error {
		ctrl, render, err := setup(c)
		if err != nil {
			return err
		}

		s := ctrl.Start(c.Context)
		if err := render(c.App.Writer, s); err != nil {
			return err
		}
		if s.List.Error != "" {
			return errListFailed
		}
		return nil
	},
}

var ShowCommand = &clilib.Command{
	Name:      "show",
	Usage:     "Print a single post by id or slug",
	ArgsUsage: "<identifier>",
	Action: func(c *clilib.Context) error {
		ctrl, render, err := setup(c)
		if err != nil {
			return err
		}

		ctrl.Start(c.Context)
		s := ctrl.Dispatch(c.Context, view.NavigateToDetail{Identifier: c.Args().First()})
		if err := render(c.App.Writer, s); err != nil {
			return err
		}
		if s.Detail.Error != "" {
			return errDetailFailed
		}
		return nil
	},
}

var BrowseCommand = &clilib.Command{
	Name:  "browse",
	Usage: "Browse posts interactively (row number or slug opens a post, b goes back, q quits)",
	Action: func(c *clilib.Context) error {
		ctrl, render, err := setup(c)
		if err != nil {
			return err
		}

		out := c.App.Writer
		var renderErr error
		ctrl.Subscribe(func(s view.State) {
			if err := render(out, s); err != nil && renderErr == nil {
				renderErr = err
			}
		})

		ctrl.Start(c.Context)
		scanner := bufio.NewScanner(c.App.Reader)
		for {
			if renderErr != nil {
				return renderErr
			}
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			if c.Context.Err() != nil {
				return nil
			}

			input := strings.TrimSpace(scanner.Text())
			switch {
			case input == "":
				continue
			case input == "q" || input == "quit":
				return nil
			case input == "b" || input == "back":
				ctrl.Dispatch(c.Context, view.NavigateToList{})
			default:
				action, msg := pick(ctrl.State(), input)
				if action == nil {
					fmt.Fprintln(out, msg)
					continue
				}
				ctrl.Dispatch(c.Context, action)
			}
		}
	},
}

// pick maps browse input to an action. Only the list view opens posts.
func pick(s view.State, input string) (view.Action, string) {
	if s.Active != view.ListView {
		return nil, "press b to return to the list"
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(s.List.Rows) {
			return nil, fmt.Sprintf("no post numbered %d", n)
		}
		return view.NavigateToDetail{Identifier: s.List.Rows[n-1].Identifier}, ""
	}
	return view.NavigateToDetail{Identifier: input}, ""
}

func setup(c *clilib.Context) (*view.Controller, renderFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	baseURL := cfg.Reader.BaseURL
	if c.IsSet("api-url") {
		baseURL = c.String("api-url")
	}
	timeout := cfg.Reader.Timeout
	if c.IsSet("timeout") {
		timeout = c.Duration("timeout")
	}

	var render renderFunc
	switch format := c.String("format"); format {
	case formatText:
		render = view.RenderText
	case formatHTML:
		minified := c.Bool("minify")
		render = func(w io.Writer, s view.State) error {
			return view.RenderHTML(w, s, minified)
		}
	default:
		return nil, nil, fmt.Errorf("unknown format %q", format)
	}

	return view.NewController(client.New(baseURL, timeout)), render, nil
}
