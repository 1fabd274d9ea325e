// SPDX-License-Identifier: MIT
// Package: lvpath/dheap
//
// options.go - functional options for Heap construction.

package dheap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/hashtable"
)

const (
	// DefaultDegree is the fan-out of a heap built without options.
	DefaultDegree = 4

	// MinDegree is the smallest fan-out; smaller requests are raised to it.
	MinDegree = 2

	// DefaultInitialCapacity is the starting length of the backing array.
	DefaultInitialCapacity = 16

	// MinInitialCapacity is the smallest starting length of the backing array.
	MinInitialCapacity = 16

	// DefaultLoadFactor is the load factor of the element index.
	DefaultLoadFactor = hashtable.DefaultLoadFactor
)

// Options configures a Heap.
type Options struct {
	Degree          int     // children per node, at least MinDegree
	InitialCapacity int     // backing array and index capacity
	LoadFactor      float64 // load factor of the element index
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// DefaultOptions returns the options used when none are passed.
func DefaultOptions() Options {
	return Options{
		Degree:          DefaultDegree,
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
	}
}

// WithDegree sets the heap fan-out. Values below MinDegree are clamped.
func WithDegree(d int) Option {
	return func(o *Options) {
		o.Degree = max(d, MinDegree)
	}
}

// WithInitialCapacity sets the starting capacity of the backing array and the
// element index. Panics if n is negative.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dheap: WithInitialCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) {
		o.InitialCapacity = max(n, MinInitialCapacity)
	}
}

// WithLoadFactor sets the load factor of the element index.
// Panics if f is not a positive finite number.
func WithLoadFactor(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("dheap: WithLoadFactor(%g): load factor must be positive and finite", f))
	}

	return func(o *Options) {
		o.LoadFactor = f
	}
}
