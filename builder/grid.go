package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Grid generates a rows×cols cost map.
//
// Steps:
//  1. Validate dimensions and WithOpen cells.
//  2. Row-major, per cell: one obstacle draw (when the ratio is > 0), then one
//     cost draw. Open cells consume the same draws but are never obstacles.
//  3. Build the immutable grid.
func Grid(rows, cols int, opts ...BuilderOption) (*gridgraph.Grid, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Fail fast, no partial work.
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrTooSmall, rows, cols)
	}
	if cfg.obstacleRatio > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%w: obstacle ratio %g", ErrNeedRandSource, cfg.obstacleRatio)
	}
	keep := make(map[gridgraph.Coord]bool, len(cfg.open))
	for _, c := range cfg.open {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: %s in %dx%d", ErrOpenOutside, c, rows, cols)
		}
		keep[c] = true
	}

	// 2) Fill.
	values := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			blocked := cfg.obstacleRatio > 0 && cfg.rng.Float64() < cfg.obstacleRatio
			cost := roundTo(cfg.costFn(cfg.rng), cfg.decimals)
			if blocked && !keep[gridgraph.Coord{Row: r, Col: c}] {
				values[r][c] = gridgraph.Obstacle
				continue
			}
			values[r][c] = cost
		}
	}

	// 3) Validation of costs happens in gridgraph.New.
	return gridgraph.New(values)
}
