package gridgraph

import (
	"fmt"
	"math"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cell values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidCost (wrapped with
// the offending coordinate) for a negative non-Obstacle value, NaN or ±Inf.
// Algorithmic complexity: O(R×C) time and memory.
func New(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	cells := make([]float64, 0, rows*cols)
	minCost := math.Inf(1)
	for r, row := range values {
		for c, v := range row {
			if v == Obstacle {
				cells = append(cells, v)
				continue
			}
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %v at %s", ErrInvalidCost, v, Coord{Row: r, Col: c})
			}
			if v < minCost {
				minCost = v
			}
			cells = append(cells, v)
		}
	}
	// All obstacles: no traversable cell to take a minimum over.
	if math.IsInf(minCost, 1) {
		minCost = 0
	}

	return &Grid{
		Rows:    rows,
		Cols:    cols,
		cells:   cells,
		minCost: minCost,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(values [][]float64) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Value returns the raw cell value at c, Obstacle included.
// c must be in bounds.
func (g *Grid) Value(c Coord) float64 {
	return g.cells[g.Index(c)]
}

// Passable reports whether c is in bounds and not an obstacle.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] != Obstacle
}

// MinCost returns the cheapest entry cost among passable cells, or 0 when
// every cell is an obstacle. It is a lower bound on the cost of any single step.
func (g *Grid) MinCost() float64 {
	return g.minCost
}

// Neighbors returns the cells reachable from c by one orthogonal step that lie
// within bounds and are not obstacles, in the order right, down, left, up.
// Returns an empty slice when none qualify.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, len(orthogonal)), c)
}

// AppendNeighbors appends the neighbors of c to dst and returns the extended
// slice. Searches reuse one buffer across expansions to avoid allocation.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range orthogonal {
		n := c.Add(d)
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// CoordOf converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) CoordOf(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Values returns a fresh copy of the grid as a 2D slice.
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]float64, g.Cols)
		copy(out[r], g.cells[r*g.Cols:(r+1)*g.Cols])
	}

	return out
}
