// Package bfs provides tunable options and error definitions
// for breadth-first search over any node type that lists its children.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvpath/hashtable"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilStart is returned when the start node is nil.
	ErrNilStart = errors.New("bfs: start node is nil")

	// ErrNilHasher is returned when no hasher is supplied.
	ErrNilHasher = errors.New("bfs: hasher is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Node is anything that can enumerate its out-neighbors.
type Node[N any] interface {
	Children() iter.Seq[N]
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[N any] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	FilterNeighbor func(curr, neighbor N) bool

	// InitialCapacity sizes the visited map.
	InitialCapacity int

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering
// and a no-op OnVisit.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Ctx:             context.Background(),
		OnVisit:         func(N, int) error { return nil },
		FilterNeighbor:  func(_, _ N) bool { return true },
		InitialCapacity: hashtable.DefaultInitialCapacity,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N any](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N any](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[N any](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N any](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithInitialCapacity presizes the visited map; negative values are a violation.
func WithInitialCapacity[N any](n int) Option[N] {
	return func(o *Options[N]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: InitialCapacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.InitialCapacity = n
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance in arcs from the start, per reached node.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result[N any] struct {
	Order  []N
	Depth  *hashtable.Map[N, int]
	Parent *hashtable.Map[N, N]
}

// Reached reports whether n was visited.
func (r *Result[N]) Reached(n N) bool {
	return r.Depth.ContainsKey(n)
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if !r.Depth.ContainsKey(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}

	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent.Get(cur)
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
