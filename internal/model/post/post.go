package post

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrDuplicateID   = errors.New("duplicate post id")
	ErrDuplicateSlug = errors.New("duplicate post slug")
)

var validate = validator.New()

// Post is a single blog article served by the API.
type Post struct {
	ID      int    `json:"id" validate:"gt=0"`
	Slug    string `json:"slug" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date,omitempty"`
	Content string `json:"content" validate:"required"`
}

// Summary is the list projection of a Post.
type Summary struct {
	ID    int    `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Summary projects the post down to its list fields.
func (p Post) Summary() Summary {
	return Summary{ID: p.ID, Slug: p.Slug, Title: p.Title}
}

// Validate checks field constraints on every post and that ids and slugs are unique.
func Validate(items []Post) error {
	ids := make(map[int]struct{}, len(items))
	slugs := make(map[string]struct{}, len(items))

	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("post %d: %w", i, err)
		}
		if _, ok := ids[item.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		if _, ok := slugs[item.Slug]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, item.Slug)
		}
		ids[item.ID] = struct{}{}
		slugs[item.Slug] = struct{}{}
	}
	return nil
}

// Seed provides the fixed posts the demo ships with.
func Seed() []Post {
	return []Post{
		{
			ID:      1,
			Slug:    "getting-started-with-node",
			Title:   "Getting Started with Node.js",
			Author:  "Admin",
			Date:    "2025-04-20",
			Content: "Node.js is a powerful JavaScript runtime built on Chrome's V8 JavaScript engine. This post covers the basics of setting up your environment.",
		},
		{
			ID:      2,
			Slug:    "express-routing-basics",
			Title:   "Express Routing Basics",
			Author:  "Dev User",
			Date:    "2025-04-21",
			Content: "Express.js makes building web applications and APIs easier. Learn how to define routes to handle different HTTP requests.",
		},
		{
			ID:      3,
			Slug:    "api-design-principles",
			Title:   "API Design Principles",
			Author:  "API Expert",
			Date:    "2025-04-22",
			Content: "Designing clean and predictable APIs is crucial for maintainability and usability. We explore some key principles.",
		},
		{
			ID:      4,
			Slug:    "connecting-frontend-backend",
			Title:   "Connecting Frontend to Backend",
			Author:  "Fullstack Dev",
			Date:    "2025-04-23",
			Content: "Learn how to use the Fetch API or libraries like Axios to make requests from your frontend application to your backend API.",
		},
	}
}
