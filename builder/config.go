// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn            ("0","1","2",...)
//   • rng      = nil                    (RandomGraph requires WithSeed/WithRand)
//   • weightFn = DistanceWeightFn(DefaultStretch)
//   • bound    = [0,DefaultExtent] × [0,DefaultExtent]

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

const (
	// DefaultExtent is the side of the square nodes are placed in by default.
	DefaultExtent = 10000.0

	// DefaultStretch scales planar distance into arc weight by default.
	DefaultStretch = 1.2
)

// builderConfig aggregates all knobs used by RandomGraph.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	bound    orb.Bound
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DistanceWeightFn(DefaultStretch),
		bound:    orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{DefaultExtent, DefaultExtent}},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// randomPoint draws a point uniformly inside the configured bound.
func (c builderConfig) randomPoint() orb.Point {
	return orb.Point{
		c.bound.Min[0] + c.rng.Float64()*(c.bound.Max[0]-c.bound.Min[0]),
		c.bound.Min[1] + c.rng.Float64()*(c.bound.Max[1]-c.bound.Min[1]),
	}
}
