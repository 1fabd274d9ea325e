// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// options.go - functional options for Map and Set construction.
//
// Contract:
//   - Option constructors panic on meaningless input (negative capacity,
//     non-positive or NaN load factor). Table operations never panic.
//   - Accepted values are normalized, not rejected: capacity is raised to
//     MinInitialCapacity and rounded up to a power of two, the load factor is
//     raised to MinLoadFactor.

package hashtable

import (
	"fmt"
	"math"
)

const (
	// DefaultInitialCapacity is the bucket count of a table built without options.
	DefaultInitialCapacity = 16

	// MinInitialCapacity is the smallest bucket count a table starts with.
	MinInitialCapacity = 16

	// DefaultLoadFactor is the occupancy ratio that triggers a resize by default.
	DefaultLoadFactor = 1.0

	// MinLoadFactor is the smallest load factor a table accepts.
	MinLoadFactor = 0.2

	// MaxCapacity is the largest bucket count a table may grow to.
	MaxCapacity = 1 << 30
)

// Options configures a Map or Set.
type Options struct {
	InitialCapacity int     // requested bucket count before normalization
	LoadFactor      float64 // maximum Len()/capacity ratio before resize
}

// Option represents a functional option for configuring a table.
type Option func(*Options)

// DefaultOptions returns the options used when none are passed.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
	}
}

// WithInitialCapacity sets the requested initial bucket count.
// Panics if n is negative.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("hashtable: WithInitialCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) {
		o.InitialCapacity = n
	}
}

// WithLoadFactor sets the maximum occupancy ratio before the table doubles.
// Panics if f is not a positive finite number.
func WithLoadFactor(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("hashtable: WithLoadFactor(%g): load factor must be positive and finite", f))
	}

	return func(o *Options) {
		o.LoadFactor = f
	}
}

// Apply resolves opts on top of DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// capacity returns the normalized initial bucket count: at least
// MinInitialCapacity, a power of two, at most MaxCapacity.
func (o Options) capacity() int {
	n := o.InitialCapacity
	if n < MinInitialCapacity {
		n = MinInitialCapacity
	}
	if n > capacityLimit {
		return capacityLimit
	}

	c := 1
	for c < n {
		c <<= 1
	}

	return c
}

// loadFactor returns the normalized load factor.
func (o Options) loadFactor() float64 {
	return math.Max(o.LoadFactor, MinLoadFactor)
}
