package blog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/zhouzirui/z-blog/backend/internal/model/post"
)

var ErrPostNotFound = errors.New("blog post not found")

// lookup is one step of identifier resolution.
type lookup struct {
	name string
	find func(identifier string) (post.Post, bool)
}

// Service answers the read operations of the blog API.
type Service struct {
	store   post.Store
	lookups []lookup
}

// NewService builds a Service that resolves identifiers by numeric id, then by slug.
func NewService(store post.Store) *Service {
	s := &Service{store: store}
	s.lookups = []lookup{
		{name: "id", find: s.findByID},
		{name: "slug", find: store.FindBySlug},
	}
	return s
}

// List returns the summary of every post in dataset order. The result is never nil.
func (s *Service) List(_ context.Context) []post.Summary {
	items := s.store.List()
	summaries := make([]post.Summary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, item.Summary())
	}
	return summaries
}

// Get resolves identifier against each lookup in order and returns the first match.
func (s *Service) Get(_ context.Context, identifier string) (post.Post, error) {
	for _, l := range s.lookups {
		if found, ok := l.find(identifier); ok {
			log.Printf("[blog] found post %q by %s", found.Title, l.name)
			return found, nil
		}
	}
	log.Printf("[blog] post not found for identifier: %s", identifier)
	return post.Post{}, fmt.Errorf("%w: %q", ErrPostNotFound, identifier)
}

func (s *Service) findByID(identifier string) (post.Post, bool) {
	id, err := strconv.Atoi(identifier)
	if err != nil {
		return post.Post{}, false
	}
	return s.store.FindByID(id)
}
