package site

// Store exposes site content to page handlers.
type Store interface {
	Content() *Content
	FindPlan(id string) (Plan, bool)
	FindFeature(slug string) (Feature, bool)
}

// MemoryStore implements Store over a parsed Content value.
type MemoryStore struct {
	content *Content
}

// NewMemoryStore returns a MemoryStore serving the supplied content.
func NewMemoryStore(content *Content) *MemoryStore {
	return &MemoryStore{content: content}
}

// Content returns the shared content. Callers must treat it as read-only.
func (s *MemoryStore) Content() *Content {
	return s.content
}

// FindPlan looks up a pricing plan by identifier.
func (s *MemoryStore) FindPlan(id string) (Plan, bool) {
	for _, item := range s.content.Plans {
		if item.ID == id {
			return item, true
		}
	}
	return Plan{}, false
}

// FindFeature looks up a feature by slug.
func (s *MemoryStore) FindFeature(slug string) (Feature, bool) {
	for _, item := range s.content.Features {
		if item.Slug == slug {
			return item, true
		}
	}
	return Feature{}, false
}
