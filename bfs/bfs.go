// Package bfs provides breadth-first search over nodes that enumerate their
// children, returning arc-count distances, parent links and visit order.
package bfs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvpath/hashtable"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N any] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N Node[N]] struct {
	opts  Options[N]
	ctx   context.Context
	queue []queueItem[N]
	res   *Result[N]
}

// BFS runs breadth-first search from start, identifying nodes through h.
// Returns ErrNilStart, ErrNilHasher or ErrOptionViolation for invalid input,
// the context error on cancellation, or any OnVisit error.
func BFS[N Node[N]](start N, h hashtable.Hasher[N], opts ...Option[N]) (*Result[N], error) {
	if isNil(start) {
		return nil, ErrNilStart
	}
	if h == nil {
		return nil, ErrNilHasher
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	capacity := hashtable.WithInitialCapacity(o.InitialCapacity)
	depth, err := hashtable.NewMap[N, int](h, capacity)
	if err != nil {
		return nil, err
	}
	parent, err := hashtable.NewMap[N, N](h, capacity)
	if err != nil {
		return nil, err
	}

	w := &walker[N]{
		opts: o,
		ctx:  o.Ctx,
		res:  &Result[N]{Depth: depth, Parent: parent},
	}
	if err = w.enqueue(start, 0); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// enqueue marks n reached at depth d and appends it to the queue.
func (w *walker[N]) enqueue(n N, d int) error {
	if _, _, err := w.res.Depth.Put(n, d); err != nil {
		return err
	}
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})

	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen child.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	for child := range item.node.Children() {
		if !w.opts.FilterNeighbor(item.node, child) || w.res.Depth.ContainsKey(child) {
			continue
		}
		if _, _, err := w.res.Parent.Put(child, item.node); err != nil {
			return err
		}
		if err := w.enqueue(child, next); err != nil {
			return err
		}
	}

	return nil
}

func isNil[N any](n N) bool {
	v := reflect.ValueOf(n)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}
