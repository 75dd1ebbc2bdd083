// Package builder provides helper functions and types for configuring
// edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return positive values;
// a non-positive weight surfaces as core.ErrBadWeight from the constructor.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn samples uniformly in [DefaultMinWeight, DefaultMaxWeight].
// A nil RNG yields DefaultMinWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(rng *rand.Rand) int64 {
	return uniform(rng, DefaultMinWeight, DefaultMaxWeight)
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 1.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 1 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		return uniform(rng, min, max)
	}
}

// uniform draws from [min, max]; the caller guarantees 1 ≤ min ≤ max.
func uniform(rng *rand.Rand, min, max int64) int64 {
	if rng == nil || max == min {
		return min
	}

	return min + rng.Int63n(max-min+1)
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
