package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/z-blog/backend/internal/handler"
	"github.com/zhouzirui/z-blog/backend/internal/model/post"
	"github.com/zhouzirui/z-blog/backend/internal/service/blog"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler.NewRouter(blog.NewService(post.NewMemoryStore(post.Seed()))))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientListPosts(t *testing.T) {
	srv := newAPI(t)
	c := New(srv.URL+"/api/", time.Second)

	got, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "getting-started-with-node", got[0].Slug)
}

func TestClientGetPost(t *testing.T) {
	srv := newAPI(t)
	c := New(srv.URL+"/api", time.Second)

	got, err := c.GetPost(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Fullstack Dev", got.Author)

	_, err = c.GetPost(context.Background(), "42")
	assert.True(t, errors.Is(err, ErrPostNotFound))
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	c := New(srv.URL, time.Second)

	_, err := c.ListPosts(context.Background())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "HTTP error! status: 502", err.Error())

	_, err = c.GetPost(context.Background(), "1")
	assert.False(t, errors.Is(err, ErrPostNotFound))
	assert.True(t, errors.As(err, &statusErr))
}

func TestClientSendsRequestID(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).ListPosts(context.Background())
	require.NoError(t, err)
	_, err = uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).ListPosts(context.Background())
	assert.Error(t, err)
}
