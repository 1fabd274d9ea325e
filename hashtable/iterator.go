// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// iterator.go - fail-fast, insertion-ordered traversal.

package hashtable

// Iterator walks a table in insertion order. It is finite, lazy and cannot be
// restarted. It is bound to the structural generation of its table at
// creation time: once the table gains or loses a key, or is cleared, the
// next call to Next returns false and Err reports ErrConcurrentModification.
//
// Typical use:
//
//	it := m.Iterator()
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// the map changed underneath the loop
//	}
type Iterator[K, V any] struct {
	t        *table[K, V]
	next     int
	iterated int
	expected uint64
	key      K
	value    V
	err      error
}

func newIterator[K, V any](t *table[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{
		t:        t,
		next:     t.head,
		expected: t.modCount,
	}
}

// Next advances to the following entry. It returns false at the end of the
// sequence or as soon as a structural modification is detected.
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.t.modCount != it.expected {
		it.err = ErrConcurrentModification
		var zk K
		var zv V
		it.key, it.value = zk, zv

		return false
	}
	if it.next == nilIndex {
		return false
	}

	e := &it.t.entries[it.next]
	it.key = e.key
	it.value = e.value
	it.next = e.next
	it.iterated++

	return true
}

// Key returns the key of the current entry.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value of the current entry as it was when Next yielded it.
func (it *Iterator[K, V]) Value() V { return it.value }

// Err returns ErrConcurrentModification if iteration stopped because the
// table changed, and nil otherwise.
func (it *Iterator[K, V]) Err() error { return it.err }

// Disturbed reports whether the table was structurally modified since the
// iterator was created.
func (it *Iterator[K, V]) Disturbed() bool {
	return it.err != nil || it.t.modCount != it.expected
}

// Remaining returns how many entries are left to yield, or 0 once disturbed.
func (it *Iterator[K, V]) Remaining() int {
	if it.Disturbed() {
		return 0
	}

	return it.t.size - it.iterated
}

// all adapts an Iterator to a range-over-func sequence. A range loop cannot
// observe an error, so a structural modification panics with
// ErrConcurrentModification, as a concurrent map write does for built-in maps.
func (t *table[K, V]) all() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		it := newIterator(t)
		for it.Next() {
			if !yield(it.key, it.value) {
				return
			}
		}
		if it.err != nil {
			panic(it.err)
		}
	}
}
