package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cost generator for passable cells.
	costFn CostFn
	// Rounding applied to generated costs; negative disables it.
	decimals int
	// Probability that a cell becomes an obstacle.
	obstacleRatio float64
	// Cells forced to stay passable.
	open []gridgraph.Coord
}

const (
	defaultDecimals      = -1
	defaultObstacleRatio = 0.0
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		costFn:        DefaultCostFn,
		decimals:      defaultDecimals,
		obstacleRatio: defaultObstacleRatio,
	}
	// Last wins, except WithOpen which accumulates.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
