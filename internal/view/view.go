// Package view is the reader's two-state view machine.
//
// A Controller owns a State that is either the post list or a single post's
// detail. Every change goes through Dispatch with a typed Action; renderers
// only ever see State snapshots.
package view

import (
	"context"
	"strconv"

	"github.com/zhouzirui/z-blog/backend/internal/model/post"
)

// Name identifies the visible view.
type Name string

const (
	// Initial is the state before the first list load.
	Initial    Name = ""
	ListView   Name = "list"
	DetailView Name = "detail"
)

// Placeholder and message texts shown by the renderers.
const (
	LoadingPosts  = "Loading posts..."
	NoPosts       = "No posts found."
	LoadingDetail = "Loading post details..."
	NoIdentifier  = "Cannot fetch details: No identifier provided."
	PostNotFound  = "Post not found."
	UnknownAuthor = "Unknown"
	UnknownDate   = "Unknown Date"
)

const (
	listErrorFormat   = "Failed to load posts. Error: %s. Make sure the backend server is running."
	detailErrorFormat = "Failed to load post details. Error: %s"
)

// Source is where the controller fetches posts from.
type Source interface {
	ListPosts(ctx context.Context) ([]post.Summary, error)
	GetPost(ctx context.Context, identifier string) (post.Post, error)
}

// Action is a requested view transition.
type Action interface {
	isAction()
}

// NavigateToList shows the list view and reloads it.
type NavigateToList struct{}

// NavigateToDetail shows the detail view for Identifier.
type NavigateToDetail struct {
	Identifier string
}

func (NavigateToList) isAction()   {}
func (NavigateToDetail) isAction() {}

// Row is one entry of the list view.
type Row struct {
	Title      string
	Identifier string
}

// Article is a post as shown in the detail view, with fallbacks applied.
type Article struct {
	Title   string
	Author  string
	Date    string
	Content string
}

// ListPane is the content of the list view.
type ListPane struct {
	Placeholder string
	Rows        []Row
	Error       string
}

// DetailPane is the content of the detail view.
type DetailPane struct {
	Placeholder string
	Article     *Article
	Error       string
}

// State is a snapshot of the whole view.
type State struct {
	Active     Name
	Generation uint64
	List       ListPane
	Detail     DetailPane
}

func (s State) clone() State {
	out := s
	out.List.Rows = append([]Row(nil), s.List.Rows...)
	if s.Detail.Article != nil {
		a := *s.Detail.Article
		out.Detail.Article = &a
	}
	return out
}

// RowFor builds the list row for a summary. The slug is preferred as identifier.
func RowFor(s post.Summary) Row {
	identifier := s.Slug
	if identifier == "" && s.ID != 0 {
		identifier = strconv.Itoa(s.ID)
	}
	return Row{Title: s.Title, Identifier: identifier}
}

// ArticleFor builds the detail view of a post.
func ArticleFor(p post.Post) *Article {
	a := &Article{
		Title:   p.Title,
		Author:  p.Author,
		Date:    p.Date,
		Content: p.Content,
	}
	if a.Author == "" {
		a.Author = UnknownAuthor
	}
	if a.Date == "" {
		a.Date = UnknownDate
	}
	return a
}
