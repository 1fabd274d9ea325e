// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// table.go - the chained, insertion-ordered table shared by Map and Set.
//
// Invariants:
//   - len(buckets) is a power of two and mask == len(buckets)-1.
//   - The chain starting at buckets[b] holds exactly the live entries whose
//     Hash(key)&mask == b.
//   - The list head..tail holds exactly the live entries, in insertion order.
//   - size <= maxAllowed == int(len(buckets) * loadFactor), except when the
//     table is already at MaxCapacity.
//   - Free slots are linked through entry.chain starting at free.

package hashtable

import "math"

// nilIndex terminates chains and lists.
const nilIndex = -1

// capacityLimit caps bucket growth; tests lower it.
var capacityLimit = MaxCapacity

// entry is one arena slot. A slot is live iff it is reachable from head.
type entry[K, V any] struct {
	key   K
	value V
	chain int // next entry in the same bucket, or next free slot
	prev  int // previous entry in insertion order
	next  int // next entry in insertion order
}

type table[K, V any] struct {
	hasher     Hasher[K]
	buckets    []int
	entries    []entry[K, V]
	free       int
	head       int
	tail       int
	size       int
	maxAllowed int
	mask       uint64
	loadFactor float64
	modCount   uint64
}

// init prepares t with a normalized configuration.
func (t *table[K, V]) init(h Hasher[K], o Options) error {
	if h == nil {
		return ErrNilHasher
	}

	capacity := o.capacity()
	t.hasher = h
	t.loadFactor = o.loadFactor()
	t.buckets = newBuckets(capacity)
	t.entries = nil
	t.free = nilIndex
	t.head = nilIndex
	t.tail = nilIndex
	t.size = 0
	t.mask = uint64(capacity - 1)
	t.maxAllowed = maxAllowedFor(capacity, t.loadFactor)

	return nil
}

func newBuckets(n int) []int {
	b := make([]int, n)
	for i := range b {
		b[i] = nilIndex
	}

	return b
}

// maxAllowedFor saturates at math.MaxInt; the float-to-int conversion of an
// out-of-range product is implementation-defined.
func maxAllowedFor(capacity int, loadFactor float64) int {
	limit := float64(capacity) * loadFactor
	if limit >= math.MaxInt {
		return math.MaxInt
	}

	return int(limit)
}

// find returns the arena index of key, or nilIndex.
func (t *table[K, V]) find(key K) int {
	for i := t.buckets[t.hasher.Hash(key)&t.mask]; i != nilIndex; i = t.entries[i].chain {
		if t.hasher.Equal(key, t.entries[i].key) {
			return i
		}
	}

	return nilIndex
}

// put inserts or replaces. Replacing returns the previous value with
// replaced == true and touches neither size nor modCount.
func (t *table[K, V]) put(key K, value V) (old V, replaced bool, err error) {
	hash := t.hasher.Hash(key)
	for i := t.buckets[hash&t.mask]; i != nilIndex; i = t.entries[i].chain {
		e := &t.entries[i]
		if t.hasher.Equal(e.key, key) {
			old = e.value
			e.value = value

			return old, true, nil
		}
	}

	if err = t.ensureCapacity(); err != nil {
		return old, false, err
	}

	// The mask may have changed during the resize.
	b := hash & t.mask
	i := t.alloc(key, value)
	t.entries[i].chain = t.buckets[b]
	t.buckets[b] = i
	t.linkLast(i)
	t.size++
	t.modCount++

	return old, false, nil
}

// ensureCapacity doubles the bucket array when one more entry would break
// the load-factor bound.
func (t *table[K, V]) ensureCapacity() error {
	if t.size < t.maxAllowed {
		return nil
	}

	capacity := len(t.buckets)
	if capacity >= capacityLimit {
		return ErrCapacityExceeded
	}

	newCapacity := capacity << 1
	newMask := uint64(newCapacity - 1)
	buckets := newBuckets(newCapacity)

	for i := t.head; i != nilIndex; i = t.entries[i].next {
		b := t.hasher.Hash(t.entries[i].key) & newMask
		t.entries[i].chain = buckets[b]
		buckets[b] = i
	}

	t.buckets = buckets
	t.mask = newMask
	t.maxAllowed = maxAllowedFor(newCapacity, t.loadFactor)

	return nil
}

// alloc takes a slot from the free list or appends one.
func (t *table[K, V]) alloc(key K, value V) int {
	if t.free != nilIndex {
		i := t.free
		t.free = t.entries[i].chain
		t.entries[i] = entry[K, V]{key: key, value: value, chain: nilIndex, prev: nilIndex, next: nilIndex}

		return i
	}

	t.entries = append(t.entries, entry[K, V]{key: key, value: value, chain: nilIndex, prev: nilIndex, next: nilIndex})

	return len(t.entries) - 1
}

func (t *table[K, V]) linkLast(i int) {
	if t.tail == nilIndex {
		t.head = i
		t.tail = i

		return
	}

	t.entries[t.tail].next = i
	t.entries[i].prev = t.tail
	t.tail = i
}

// remove unlinks key from its chain and from the insertion list.
func (t *table[K, V]) remove(key K) (value V, ok bool) {
	b := t.hasher.Hash(key) & t.mask
	prevInChain := nilIndex

	for i := t.buckets[b]; i != nilIndex; i = t.entries[i].chain {
		e := &t.entries[i]
		if !t.hasher.Equal(key, e.key) {
			prevInChain = i
			continue
		}

		// 1) Omit i from the collision chain.
		if prevInChain != nilIndex {
			t.entries[prevInChain].chain = e.chain
		} else {
			t.buckets[b] = e.chain
		}

		// 2) Omit i from the insertion list.
		if e.prev != nilIndex {
			t.entries[e.prev].next = e.next
		} else {
			t.head = e.next
		}
		if e.next != nilIndex {
			t.entries[e.next].prev = e.prev
		} else {
			t.tail = e.prev
		}

		// 3) Release the slot; zeroing drops references held by key and value.
		value = e.value
		*e = entry[K, V]{chain: t.free, prev: nilIndex, next: nilIndex}
		t.free = i
		t.size--
		t.modCount++

		return value, true
	}

	return value, false
}

// clear drops every entry but keeps the current bucket count.
func (t *table[K, V]) clear() {
	if t.size == 0 && len(t.entries) == 0 {
		return
	}

	for i := range t.buckets {
		t.buckets[i] = nilIndex
	}
	clear(t.entries)
	t.entries = t.entries[:0]
	t.free = nilIndex
	t.head = nilIndex
	t.tail = nilIndex
	t.modCount += uint64(t.size)
	t.size = 0
}

// capacity reports the current bucket count.
func (t *table[K, V]) capacity() int { return len(t.buckets) }

// healthy verifies every structural invariant. O(n + capacity).
func (t *table[K, V]) healthy() bool {
	if t.hasher == nil || len(t.buckets) == 0 || uint64(len(t.buckets)-1) != t.mask {
		return false
	}
	if len(t.buckets)&(len(t.buckets)-1) != 0 {
		return false
	}
	if t.size > t.maxAllowed && len(t.buckets) < capacityLimit {
		return false
	}

	// 1) Insertion list: consistent back links, exact length.
	if t.head != nilIndex && t.entries[t.head].prev != nilIndex {
		return false
	}
	count, last := 0, nilIndex
	for i := t.head; i != nilIndex; i = t.entries[i].next {
		if t.entries[i].prev != last {
			return false
		}
		last = i
		count++
		if count > t.size {
			return false
		}
	}
	if count != t.size || last != t.tail {
		return false
	}

	// 2) Chains: every entry sits in the bucket its hash selects.
	count = 0
	for b, i := range t.buckets {
		for ; i != nilIndex; i = t.entries[i].chain {
			if t.hasher.Hash(t.entries[i].key)&t.mask != uint64(b) {
				return false
			}
			count++
			if count > t.size {
				return false
			}
		}
	}

	return count == t.size
}
