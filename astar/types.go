// Package astar provides tunable options, heuristics and error definitions
// for A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: start or goal out of bounds")

	// ErrBlockedEndpoint is returned when start or goal is an obstacle cell.
	ErrBlockedEndpoint = errors.New("astar: start or goal is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions nodes were expanded
	// without reaching the goal or exhausting the open set.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the remaining cost from one cell to another.
// It must be non-negative and never exceed the true cheapest cost for the
// search to return optimal paths.
type Heuristic func(from, to gridgraph.Coord) float64

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(from, to gridgraph.Coord) float64 {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

// Zero always returns 0, which turns A* into Dijkstra's algorithm.
func Zero(_, _ gridgraph.Coord) float64 { return 0 }

// Scaled returns a heuristic that multiplies h by k.
func Scaled(h Heuristic, k float64) Heuristic {
	return func(from, to gridgraph.Coord) float64 {
		return k * h(from, to)
	}
}

// GridManhattan is the default estimator for g: Manhattan distance weighted by
// the cheapest passable cell cost. Every step costs at least g.MinCost(), so
// the estimate never exceeds the true cost even when cells cost less than 1.
// For grids whose cheapest cell costs exactly 1 it equals Manhattan.
func GridManhattan(g *gridgraph.Grid) Heuristic {
	k := g.MinCost()
	if k == 1 {
		return Manhattan
	}

	return Scaled(Manhattan, k)
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when the search is started.
type Option func(*Options)

// Options holds the parameters of one search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Heuristic overrides the default GridManhattan estimator when non-nil.
	Heuristic Heuristic

	// MaxExpansions, if > 0, bounds the number of expanded nodes.
	// A value of 0 disables the limit.
	MaxExpansions int

	// Logger receives debug-level search events.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with defaults:
//   - context.Background()
//   - GridManhattan heuristic (chosen per grid at search time)
//   - no expansion limit
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the default estimator. A nil h is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = errors.New("heuristic must not be nil")
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions bounds the number of node expansions. n must be ≥ 0;
// 0 means unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.New("max expansions must be non-negative")
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes search events to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result contains the outcome of a search.
//
// Path runs from start to goal inclusive, or is nil when no path exists.
// Cost is the sum of entry costs of every path cell except the start.
// Expanded counts the nodes popped from the open set.
type Result struct {
	Path     []gridgraph.Coord
	Cost     float64
	Expanded int
	Found    bool
}
