// Package dijkstra defines core types and configuration options
// for Dijkstra's cost-field computation on a gridgraph.Grid.
//
// Options:
//
//	– MaxCost:   optional cap on costs to explore; cells beyond this stay unreached.
//	– Target:    optional cell at which to stop early once its cost is final.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrSourceOutside   if the source coordinate is outside the grid.
//	– ErrSourceBlocked   if the source cell is an obstacle.
//	– ErrBadMaxCost      if MaxCost < 0 or NaN.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Distances.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutside indicates that the source coordinate lies outside the grid.
	ErrSourceOutside = errors.New("dijkstra: source outside grid")

	// ErrSourceBlocked indicates that the source coordinate is an obstacle cell.
	ErrSourceBlocked = errors.New("dijkstra: source is an obstacle")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Unreached is the cost reported for cells that were never reached.
var Unreached = math.Inf(1)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxCost – optional cap on costs to explore (cells beyond are left Unreached).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Target – if HasTarget, the search stops as soon as Target is finalized.
type Options struct {
	MaxCost   float64         // Maximum cost to explore
	Target    gridgraph.Coord // Early-exit cell
	HasTarget bool            // Whether Target is set
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxCost sets a maximum cost threshold.
// Cells whose cheapest cost would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithTarget stops the search once target's cost is final. Cells farther
// than target may be left Unreached.
func WithTarget(target gridgraph.Coord) Option {
	return func(o *Options) {
		o.Target = target
		o.HasTarget = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxCost:   +Inf (no cost limit; explore all reachable).
//   - HasTarget: false (run to exhaustion).
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
	}
}

// Field is the result of a single-source run: the cheapest cost to enter
// every cell from Source, plus the predecessor chain for each reached cell.
// Cost and Prev are indexed by the grid's row-major cell index.
type Field struct {
	Source gridgraph.Coord
	Cost   []float64 // Unreached for cells not reached
	Prev   []int     // -1 for Source and unreached cells

	grid *gridgraph.Grid
}
