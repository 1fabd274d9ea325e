// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// map.go - Map[K, V], the key→value face of the shared table.

package hashtable

import "iter"

// Map is a hash map with caller-defined key identity and insertion-ordered,
// fail-fast iteration. Construct it with NewMap; the zero value is not usable.
type Map[K, V any] struct {
	t table[K, V]
}

// NewMap returns an empty Map that identifies keys through h.
// Returns ErrNilHasher if h is nil.
func NewMap[K, V any](h Hasher[K], opts ...Option) (*Map[K, V], error) {
	m := &Map[K, V]{}
	if err := m.t.init(h, Apply(opts...)); err != nil {
		return nil, err
	}

	return m, nil
}

// Put associates value with key.
//
// If key is already present its value is replaced, the previous value is
// returned with replaced == true, and the map is not considered structurally
// modified. Otherwise the table may double (ErrCapacityExceeded if it
// cannot) and a new entry is appended to the iteration order.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool, err error) {
	return m.t.put(key, value)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i := m.t.find(key); i != nilIndex {
		return m.t.entries[i].value, true
	}
	var zero V

	return zero, false
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.t.find(key) != nilIndex
}

// Remove deletes key and returns its value; ok is false if key was absent.
func (m *Map[K, V]) Remove(key K) (value V, ok bool) {
	return m.t.remove(key)
}

// Clear removes every entry. Outstanding iterators become stale.
func (m *Map[K, V]) Clear() { m.t.clear() }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.size }

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int { return m.t.capacity() }

// Iterator returns a fail-fast iterator positioned before the oldest entry.
func (m *Map[K, V]) Iterator() *Iterator[K, V] { return newIterator(&m.t) }

// All returns a sequence of key/value pairs in insertion order.
// Inserting or removing keys while ranging panics with ErrConcurrentModification.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t.all() }

// Keys returns a sequence of keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.t.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.t.all() {
			if !yield(v) {
				return
			}
		}
	}
}

// IsHealthy verifies the internal invariants of the table. Intended for tests.
func (m *Map[K, V]) IsHealthy() bool { return m.t.healthy() }
