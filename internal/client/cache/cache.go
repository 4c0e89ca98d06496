// Package cache implements the per-entity-type mirrored collections the view
// layer reads. Each Store is an in-memory, append-ordered mirror of backend
// rows, keyed by id. Stores are independent: there is no cross-store
// transaction, and all contents are ephemeral per process run.
package cache

import "sync"

// Entity is anything with a numeric identity. All mirrored records
// implement it.
type Entity interface {
	Identity() int64
}

// Store mirrors one entity collection. A mutex guards mutation so concurrent
// gateway completions never interleave mid-write; ordering across concurrent
// operations is otherwise unspecified (arrival order wins).
type Store[T Entity] struct {
	mu    sync.RWMutex
	items []T
}

func New[T Entity]() *Store[T] {
	return &Store[T]{}
}

// ReplaceAll fully replaces the contents with entities, in the given order.
// Nothing is merged: a record present locally but absent from the new list
// is dropped, even if it was inserted optimistically while the fetch was in
// flight. Calling twice with the same list yields identical contents.
func (s *Store[T]) ReplaceAll(entities []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(entities))
	copy(s.items, entities)
}

// Insert appends the entity. There is deliberately no dedup check: inserting
// the same id twice stores two entries. The next ReplaceAll is the
// reconciliation point.
func (s *Store[T]) Insert(e T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
}

// ReplaceOne locates the first entry with the entity's id and replaces it in
// place. If no entry matches, it is a silent no-op.
func (s *Store[T]) ReplaceOne(e T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Identity() == e.Identity() {
			s.items[i] = e
			return
		}
	}
}

// RemoveOne filters out every entry with the given id. Absent ids are a
// no-op.
func (s *Store[T]) RemoveOne(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, e := range s.items {
		if e.Identity() != id {
			kept = append(kept, e)
		}
	}
	s.items = kept
}

// All returns a copy of the current contents in store order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the first entry with the given id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.Identity() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Len reports the number of stored entries, counting duplicates.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
