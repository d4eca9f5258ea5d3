package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/z-blog/backend/internal/model/post"
)

var ErrPostNotFound = errors.New("post not found")

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// Client talks to the blog API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8080/api.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListPosts fetches the post summaries.
func (c *Client) ListPosts(ctx context.Context) ([]post.Summary, error) {
	var summaries []post.Summary
	if err := c.get(ctx, "/blogs", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetPost fetches one post by id or slug. A 404 yields ErrPostNotFound.
func (c *Client) GetPost(ctx context.Context, identifier string) (post.Post, error) {
	var p post.Post
	err := c.get(ctx, "/blogs/"+url.PathEscape(identifier), &p)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return post.Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, identifier)
		}
		return post.Post{}, err
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
