package stats

import (
	"fmt"
	"sort"
	"sync"
)

// Source translates one provider's raw field names into canonical keys.
type Source interface {
	// Tag is the source identifier carried on every Record from this provider.
	Tag() string

	// Canonical returns the canonical key for a raw field, or false when the
	// field is not scored by this engine.
	Canonical(field string) (string, bool)
}

type tableSource struct {
	tag    string
	fields map[string]string
}

func (s *tableSource) Tag() string { return s.tag }

func (s *tableSource) Canonical(field string) (string, bool) {
	key, ok := s.fields[field]
	return key, ok
}

// Registry holds the known sources by tag.
type Registry struct {
	sources map[string]Source
	mu      sync.RWMutex
}

// NewRegistry returns a registry with no sources.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// DefaultRegistry returns a registry holding the ESPN and PFR sources.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(ESPN)
	_ = r.Register(PFRef)
	return r
}

// Register adds a source; registering the same tag twice is an error.
func (r *Registry) Register(src Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag := src.Tag()
	if _, exists := r.sources[tag]; exists {
		return fmt.Errorf("source %s is already registered", tag)
	}
	r.sources[tag] = src
	return nil
}

// Get looks a source up by tag.
func (r *Registry) Get(tag string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.sources[tag]
	return src, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.sources))
	for tag := range r.sources {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NormalizeRecord looks up the record's source and normalizes and derives
// its stats in one step.
func (r *Registry) NormalizeRecord(rec Record) (Stats, error) {
	src, ok := r.Get(rec.Source)
	if !ok {
		return nil, fmt.Errorf("unknown stat source %q for player %d week %d", rec.Source, rec.PlayerID, rec.Week)
	}
	canonical, err := Normalize(rec, src)
	if err != nil {
		return nil, err
	}
	return Derive(canonical), nil
}
