// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     RandomGraph itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// BuilderOption customizes RandomGraph by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the deterministic node naming function: idx -> name.
// Panics on nil.
func WithNameScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithNamePrefix names nodes prefix+index, e.g. "v0", "v1", ...
func WithNamePrefix(prefix string) BuilderOption {
	return WithNameScheme(SymbolNumberIDFn(prefix))
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the rectangle nodes are placed in.
// Panics if b is empty (Min beyond Max) or has a non-finite corner.
func WithBounds(b orb.Bound) BuilderOption {
	for _, v := range []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("builder: WithBounds(%v): corners must be finite", b))
		}
	}
	if b.IsEmpty() {
		panic(fmt.Sprintf("builder: WithBounds(%v): min must not exceed max", b))
	}

	return func(c *builderConfig) {
		c.bound = b
	}
}

// WithWeightFn overrides the arc weight policy. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithStretch weighs arcs as stretch × planar distance.
// Panics under the same conditions as DistanceWeightFn.
func WithStretch(stretch float64) BuilderOption {
	return WithWeightFn(DistanceWeightFn(stretch))
}
