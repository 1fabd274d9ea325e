// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// weight_fn.go - arc weight policies.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// WeightFn produces the weight of the arc tail→head from the endpoints'
// positions and the builder RNG. It must return a non-negative finite value
// and be deterministic for a given RNG state.
type WeightFn func(tail, head orb.Point, rng *rand.Rand) float64

// DistanceWeightFn weighs an arc as stretch × the planar distance between its
// endpoints. Panics if stretch is not a positive finite number.
func DistanceWeightFn(stretch float64) WeightFn {
	if !(stretch > 0) || math.IsInf(stretch, 0) {
		panic(fmt.Sprintf("DistanceWeightFn: stretch must be positive and finite, got %g", stretch))
	}

	return func(tail, head orb.Point, _ *rand.Rand) float64 {
		return stretch * planar.Distance(tail, head)
	}
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is negative or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_, _ orb.Point, _ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(_, _ orb.Point, rng *rand.Rand) float64 {
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
