// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvpath/builder"
)

func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"DistanceWeightFn_zero", func() builder.WeightFn { return builder.DistanceWeightFn(0) }},
		{"DistanceWeightFn_inf", func() builder.WeightFn { return builder.DistanceWeightFn(math.Inf(1)) }},
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_nan", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	a, b := orb.Point{0, 0}, orb.Point{3, 4}

	assert.InDelta(t, 6.0, builder.DistanceWeightFn(1.2)(a, b, rng), 1e-12)
	assert.Zero(t, builder.DistanceWeightFn(1.2)(a, a, rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(a, b, rng))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(a, b, rng))

	uni := builder.UniformWeightFn(1, 100)
	for i := 0; i < 1000; i++ {
		w := uni(a, b, rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 100.0)
	}
}
