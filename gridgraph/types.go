// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCost indicates a cell value that is neither Obstacle nor a finite non-negative cost.
	ErrInvalidCost = errors.New("gridgraph: cell cost must be finite and non-negative")
	// ErrInvalidPath indicates a path that does not walk the grid in orthogonal steps.
	ErrInvalidPath = errors.New("gridgraph: invalid path")
)

// Obstacle is the cell value that marks an impassable cell.
const Obstacle = -1.0

// Coord addresses a cell by row and column, both 0-indexed.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Grid is an immutable rectangular cost map.
// Rows and Cols define dimensions; cells holds the copied input in row-major order.
type Grid struct {
	Rows, Cols int
	cells      []float64
	minCost    float64
}

// orthogonal lists the four unit moves in the fixed enumeration order used by
// Neighbors: right, down, left, up. Search tie-breaking depends on this order.
var orthogonal = [4]Coord{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}
