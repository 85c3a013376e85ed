package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultCellCost is the cost produced when no CostFn is configured.
const DefaultCellCost float64 = 1

// MaxDecimals bounds WithDecimals; float64 carries no more significant digits.
const MaxDecimals = 15

// CostFn produces one cell cost from an optional RNG. It must be deterministic
// for a given RNG state and must return a finite value ≥ 0.
type CostFn func(rng *rand.Rand) float64

// DefaultCostFn always returns DefaultCellCost.
func DefaultCostFn(_ *rand.Rand) float64 {
	return DefaultCellCost
}

// ConstantCostFn always yields value. Panics if value < 0.
func ConstantCostFn(value float64) CostFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantCostFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCostFn samples uniformly in [min, max). Panics unless 0 ≤ min ≤ max.
// With a nil rng it yields min.
func UniformCostFn(min, max float64) CostFn {
	if min < 0 || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// roundTo rounds v to n decimals; n < 0 leaves v unchanged.
func roundTo(v float64, n int) float64 {
	if n < 0 {
		return v
	}
	p := math.Pow(10, float64(n))

	return math.Round(v*p) / p
}
