package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BuilderOption customizes Grid by mutating a builderConfig before generation.
type BuilderOption func(*builderConfig)

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

// WithCostFn overrides the per-cell cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithConstantCost gives every passable cell the same cost.
func WithConstantCost(v float64) BuilderOption {
	return WithCostFn(ConstantCostFn(v))
}

// WithUniformCost draws costs from U[min,max).
func WithUniformCost(min, max float64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithDecimals rounds every generated cost to n decimal places.
// Panics unless 0 ≤ n ≤ MaxDecimals.
func WithDecimals(n int) BuilderOption {
	if n < 0 || n > MaxDecimals {
		panic(fmt.Sprintf("builder: WithDecimals(%d)", n))
	}
	return func(c *builderConfig) {
		c.decimals = n
	}
}

// WithObstacleRatio sets the probability that a cell is an obstacle.
// Panics unless 0 ≤ p < 1.
func WithObstacleRatio(p float64) BuilderOption {
	if p < 0 || p >= 1 {
		panic(fmt.Sprintf("builder: WithObstacleRatio(%g) outside [0,1)", p))
	}
	return func(c *builderConfig) {
		c.obstacleRatio = p
	}
}

// WithOpen keeps the given cells passable. Repeated calls accumulate.
func WithOpen(cells ...gridgraph.Coord) BuilderOption {
	return func(c *builderConfig) {
		c.open = append(c.open, cells...)
	}
}
