package post

// Store exposes read-only post retrieval for the blog service.
type Store interface {
	List() []Post
	FindByID(id int) (Post, bool)
	FindBySlug(slug string) (Post, bool)
}

// MemoryStore implements Store over a slice fixed at construction time.
type MemoryStore struct {
	items []Post
}

// NewMemoryStore returns a MemoryStore holding a private copy of items.
func NewMemoryStore(items []Post) *MemoryStore {
	return &MemoryStore{items: append([]Post(nil), items...)}
}

// List returns every post in dataset order.
func (s *MemoryStore) List() []Post {
	return append([]Post(nil), s.items...)
}

// FindByID looks up a post by numeric identifier.
func (s *MemoryStore) FindByID(id int) (Post, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Post{}, false
}

// FindBySlug looks up a post by slug.
func (s *MemoryStore) FindBySlug(slug string) (Post, bool) {
	for _, item := range s.items {
		if item.Slug == slug {
			return item, true
		}
	}
	return Post{}, false
}
