// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// set.go - Set[K], the key-only face of the shared table.

package hashtable

import "iter"

// Set is a hash set with caller-defined element identity and
// insertion-ordered, fail-fast iteration. Construct it with NewSet.
type Set[K any] struct {
	t table[K, struct{}]
}

// NewSet returns an empty Set that identifies elements through h.
// Returns ErrNilHasher if h is nil.
func NewSet[K any](h Hasher[K], opts ...Option) (*Set[K], error) {
	s := &Set[K]{}
	if err := s.t.init(h, Apply(opts...)); err != nil {
		return nil, err
	}

	return s, nil
}

// Add inserts key. It returns false, with no modification, if an equal
// element is already present.
func (s *Set[K]) Add(key K) (bool, error) {
	_, replaced, err := s.t.put(key, struct{}{})
	if err != nil {
		return false, err
	}

	return !replaced, nil
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool { return s.t.find(key) != nilIndex }

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.t.remove(key)

	return ok
}

// Clear removes every element. Outstanding iterators become stale.
func (s *Set[K]) Clear() { s.t.clear() }

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.t.size }

// Capacity returns the current bucket count.
func (s *Set[K]) Capacity() int { return s.t.capacity() }

// Iterator returns a fail-fast iterator over the elements; Value is always struct{}{}.
func (s *Set[K]) Iterator() *Iterator[K, struct{}] { return newIterator(&s.t) }

// All returns a sequence of elements in insertion order.
// Adding or removing elements while ranging panics with ErrConcurrentModification.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.t.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// IsHealthy verifies the internal invariants of the table. Intended for tests.
func (s *Set[K]) IsHealthy() bool { return s.t.healthy() }
