// Package dijkstra defines the collaborator interfaces, result types,
// sentinel errors and options of the shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvpath/dheap"
	"github.com/katalvlaran/lvpath/hashtable"
)

// Sentinel errors returned by the search.
var (
	// ErrNilSource indicates that the source node is nil.
	ErrNilSource = errors.New("dijkstra: source node is nil")

	// ErrNilTarget indicates that the target node is nil.
	ErrNilTarget = errors.New("dijkstra: target node is nil")

	// ErrNilWeightFunction indicates that no weight function was supplied.
	ErrNilWeightFunction = errors.New("dijkstra: weight function is nil")

	// ErrNilHasher indicates that no node Hasher was supplied.
	ErrNilHasher = errors.New("dijkstra: hasher is nil")

	// ErrMissingWeight indicates that a node enumerated a child for which the
	// weight function has no weight.
	ErrMissingWeight = errors.New("dijkstra: missing arc weight")

	// ErrNegativeWeight indicates a negative or NaN arc weight.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")
)

// Node is the graph capability the search needs: enumerate outgoing neighbours.
type Node[N any] interface {
	Children() iter.Seq[N]
}

// WeightFunction returns the weight of the arc tail→head, if any.
type WeightFunction[N any] interface {
	Get(tail, head N) (float64, bool)
}

// Stats counts the work done by one search.
type Stats struct {
	Pops               int // nodes extracted from the open set
	Pushes             int // nodes added to the open set
	DecreaseKeys       int // successful decrease-key operations
	RelaxationAttempts int // arcs examined from settled nodes to unsettled ones
	Relaxations        int // arcs that produced a first or better tentative cost
	Settled            int // nodes moved to the closed set
}

// Result is the outcome of Search.
//
// Path    – source..target inclusive; empty (never nil) if the target is unreachable.
// Cost    – total weight of Path; +Inf if unreachable.
// Found   – whether the target was reached.
// Stats   – operation counters.
type Result[N any] struct {
	Path  []N
	Cost  float64
	Found bool
	Stats Stats
}

// Options configures the search.
//
// Degree           – fan-out of the open-set heap (≥ 2).
// InitialCapacity  – starting capacity of the open set and of every table.
// LoadFactor       – load factor of every table.
// OnSettle         – called when a node is extracted with its final cost,
//
//	including the target.
type Options[N any] struct {
	Degree          int
	InitialCapacity int
	LoadFactor      float64
	OnSettle        func(node N, cost float64)
}

// Option represents a functional option for configuring the search.
type Option[N any] func(*Options[N])

// DefaultOptions returns the options used when none are passed.
//
// Defaults:
//   - Degree:          4.
//   - InitialCapacity: 16.
//   - LoadFactor:      1.0.
//   - OnSettle:        no-op.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Degree:          dheap.DefaultDegree,
		InitialCapacity: hashtable.DefaultInitialCapacity,
		LoadFactor:      hashtable.DefaultLoadFactor,
		OnSettle:        func(N, float64) {},
	}
}

// WithDegree sets the fan-out of the open-set heap. Values below 2 are raised to 2.
func WithDegree[N any](d int) Option[N] {
	return func(o *Options[N]) {
		o.Degree = max(d, dheap.MinDegree)
	}
}

// WithInitialCapacity sets the starting capacity of every container.
// Panics if n is negative.
func WithInitialCapacity[N any](n int) Option[N] {
	if n < 0 {
		panic(fmt.Sprintf("dijkstra: WithInitialCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options[N]) {
		o.InitialCapacity = n
	}
}

// WithLoadFactor sets the load factor of every table.
// Panics if f is not a positive finite number.
func WithLoadFactor[N any](f float64) Option[N] {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("dijkstra: WithLoadFactor(%g): load factor must be positive and finite", f))
	}

	return func(o *Options[N]) {
		o.LoadFactor = f
	}
}

// WithOnSettle registers a hook called for every extracted node with its
// final cost. A nil fn is ignored.
func WithOnSettle[N any](fn func(node N, cost float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
