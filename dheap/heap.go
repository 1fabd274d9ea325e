// SPDX-License-Identifier: MIT
// Package: lvpath/dheap
//
// heap.go - the indexed d-ary heap.
//
// Invariants:
//   - For every slot i > 0: cmp(nodes[(i-1)/d].priority, nodes[i].priority) <= 0.
//   - nodes[i].index == i for every live slot.
//   - index maps exactly the queued elements to their nodes.

package dheap

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvpath/hashtable"
)

type node[E, P any] struct {
	element  E
	priority P
	index    int
}

// Heap is an indexed d-ary min-heap of distinct elements of type E ordered
// by priorities of type P.
type Heap[E, P any] struct {
	nodes  []*node[E, P]
	index  *hashtable.Map[E, *node[E, P]]
	cmp    func(a, b P) int
	degree int
}

// New builds an empty Heap whose element identity is given by h and whose
// priorities are ordered by compare.
func New[E, P any](h hashtable.Hasher[E], compare func(a, b P) int, opts ...Option) (*Heap[E, P], error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.InitialCapacity > hashtable.MaxCapacity {
		return nil, fmt.Errorf("%w: initial capacity %d > %d",
			ErrCapacityExceeded, o.InitialCapacity, hashtable.MaxCapacity)
	}

	idx, err := hashtable.NewMap[E, *node[E, P]](h,
		hashtable.WithInitialCapacity(o.InitialCapacity),
		hashtable.WithLoadFactor(o.LoadFactor),
	)
	if err != nil {
		return nil, fmt.Errorf("dheap: element index: %w", err)
	}

	return &Heap[E, P]{
		nodes:  make([]*node[E, P], 0, o.InitialCapacity),
		index:  idx,
		cmp:    compare,
		degree: o.Degree,
	}, nil
}

// NewOrdered builds an empty Heap over naturally ordered priorities.
func NewOrdered[E any, P constraints.Ordered](h hashtable.Hasher[E], opts ...Option) (*Heap[E, P], error) {
	return New[E, P](h, cmp.Compare[P], opts...)
}

// Add enqueues e with priority p. It reports false without touching the heap
// if e is already queued.
func (q *Heap[E, P]) Add(e E, p P) (bool, error) {
	if q.index.ContainsKey(e) {
		return false, nil
	}

	n := &node[E, P]{element: e, priority: p, index: len(q.nodes)}
	if _, _, err := q.index.Put(e, n); err != nil {
		if errors.Is(err, hashtable.ErrCapacityExceeded) {
			return false, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
		}

		return false, err
	}

	q.grow()
	q.nodes = append(q.nodes, n)
	q.siftUp(n.index)

	return true, nil
}

// grow extends the backing array by half its capacity when it is full.
func (q *Heap[E, P]) grow() {
	if len(q.nodes) < cap(q.nodes) {
		return
	}

	nodes := make([]*node[E, P], len(q.nodes), max(3*cap(q.nodes)/2, MinInitialCapacity))
	copy(nodes, q.nodes)
	q.nodes = nodes
}

// DecreaseKey lowers the priority of e to p. It reports false if e is not
// queued or p is not strictly smaller than the current priority.
func (q *Heap[E, P]) DecreaseKey(e E, p P) bool {
	n, ok := q.index.Get(e)
	if !ok || q.cmp(p, n.priority) >= 0 {
		return false
	}

	n.priority = p
	q.siftUp(n.index)

	return true
}

// ExtractMin removes and returns the element with the smallest priority.
// ok is false on an empty heap.
func (q *Heap[E, P]) ExtractMin() (e E, p P, ok bool) {
	if len(q.nodes) == 0 {
		return e, p, false
	}

	root := q.nodes[0]
	last := len(q.nodes) - 1
	q.nodes[0] = q.nodes[last]
	q.nodes[0].index = 0
	q.nodes[last] = nil
	q.nodes = q.nodes[:last]
	q.index.Remove(root.element)

	if len(q.nodes) > 0 {
		q.siftDown(0)
	}

	return root.element, root.priority, true
}

// Min returns the element with the smallest priority without removing it.
func (q *Heap[E, P]) Min() (e E, p P, ok bool) {
	if len(q.nodes) == 0 {
		return e, p, false
	}

	return q.nodes[0].element, q.nodes[0].priority, true
}

// Priority returns the stored priority of e.
func (q *Heap[E, P]) Priority(e E) (p P, ok bool) {
	n, ok := q.index.Get(e)
	if !ok {
		return p, false
	}

	return n.priority, true
}

// Contains reports whether e is queued.
func (q *Heap[E, P]) Contains(e E) bool { return q.index.ContainsKey(e) }

// Len returns the number of queued elements.
func (q *Heap[E, P]) Len() int { return len(q.nodes) }

// Degree returns the fan-out of the heap.
func (q *Heap[E, P]) Degree() int { return q.degree }

// Clear removes every element and keeps the allocated capacity.
func (q *Heap[E, P]) Clear() {
	clear(q.nodes)
	q.nodes = q.nodes[:0]
	q.index.Clear()
}

// IsHealthy verifies the heap order, the slot back-references and the
// element index. O(n·d).
func (q *Heap[E, P]) IsHealthy() bool {
	if q.index.Len() != len(q.nodes) || !q.index.IsHealthy() {
		return false
	}

	for i, n := range q.nodes {
		if n.index != i {
			return false
		}
		if got, ok := q.index.Get(n.element); !ok || got != n {
			return false
		}
		if i > 0 && q.cmp(q.nodes[q.parent(i)].priority, n.priority) > 0 {
			return false
		}
	}

	return true
}

func (q *Heap[E, P]) parent(i int) int { return (i - 1) / q.degree }

// siftUp moves the node at slot i toward the root while its parent is
// strictly greater.
func (q *Heap[E, P]) siftUp(i int) {
	target := q.nodes[i]
	for i > 0 {
		p := q.parent(i)
		parent := q.nodes[p]
		if q.cmp(parent.priority, target.priority) <= 0 {
			break
		}

		q.nodes[i] = parent
		parent.index = i
		i = p
	}

	q.nodes[i] = target
	target.index = i
}

// siftDown moves the node at slot i down into the position of its smallest
// child for as long as that child is strictly smaller.
func (q *Heap[E, P]) siftDown(i int) {
	target := q.nodes[i]
	size := len(q.nodes)

	for {
		// 1) Find the smallest child strictly below target.
		best, bestPriority := -1, target.priority
		first := q.degree*i + 1
		for c := first; c < first+q.degree && c < size; c++ {
			if q.cmp(q.nodes[c].priority, bestPriority) < 0 {
				best, bestPriority = c, q.nodes[c].priority
			}
		}

		// 2) Settle or pull that child up.
		if best < 0 {
			break
		}

		q.nodes[i] = q.nodes[best]
		q.nodes[i].index = i
		i = best
	}

	q.nodes[i] = target
	target.index = i
}
