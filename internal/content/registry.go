package content

import (
	"slices"
	"sync/atomic"
)

// Registry is an immutable snapshot of all documentation entries.
// Accessors return copies, so callers cannot change a snapshot.
type Registry struct {
	endpoints map[PageID][]EndpointDescriptor
	fields    map[PageID][]ModelFieldDescriptor
	menu      Menu
}

// Endpoints returns the ordered endpoint listing of page id.
func (r *Registry) Endpoints(id PageID) []EndpointDescriptor {
	src := r.endpoints[id]
	out := make([]EndpointDescriptor, len(src))
	for i, d := range src {
		out[i] = d.clone()
	}
	return out
}

// Fields returns the ordered field listing of page id.
func (r *Registry) Fields(id PageID) []ModelFieldDescriptor {
	src := r.fields[id]
	out := make([]ModelFieldDescriptor, len(src))
	for i, d := range src {
		out[i] = d.clone()
	}
	return out
}

// Menu returns the sidebar sections.
func (r *Registry) Menu() Menu {
	return Menu{Upper: slices.Clone(r.menu.Upper), Lower: slices.Clone(r.menu.Lower)}
}

// Counts summarizes the snapshot for logs and admin endpoints.
func (r *Registry) Counts() (endpoints, fields, menuEntries int) {
	for _, l := range r.endpoints {
		endpoints += len(l)
	}
	for _, l := range r.fields {
		fields += len(l)
	}
	return endpoints, fields, len(r.menu.Upper) + len(r.menu.Lower)
}

// Store holds the registry snapshot currently being served.
type Store struct {
	cur atomic.Pointer[Registry]
}

// NewStore returns a store serving reg.
func NewStore(reg *Registry) *Store {
	s := &Store{}
	s.cur.Store(reg)
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() *Registry { return s.cur.Load() }

// Replace swaps in a new snapshot.
func (s *Store) Replace(reg *Registry) { s.cur.Store(reg) }
