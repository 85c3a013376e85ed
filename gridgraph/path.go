package gridgraph

import "fmt"

// ValidatePath checks that path is a chain of passable, in-bounds cells where
// every consecutive pair differs by exactly one orthogonal step.
// An empty path is valid. Errors wrap ErrInvalidPath.
func (g *Grid) ValidatePath(path []Coord) error {
	for i, c := range path {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: step %d %s out of bounds", ErrInvalidPath, i, c)
		}
		if !g.Passable(c) {
			return fmt.Errorf("%w: step %d %s is an obstacle", ErrInvalidPath, i, c)
		}
		if i == 0 {
			continue
		}
		if !Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: %s and %s are not orthogonal neighbors", ErrInvalidPath, path[i-1], c)
		}
	}

	return nil
}

// Adjacent reports whether a and b differ by exactly one unit in exactly one axis.
func Adjacent(a, b Coord) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)

	return dr+dc == 1
}

// PathCost returns the cost of walking path: the sum of the entry costs of
// every cell except the first, since the walker already stands on the start.
// This equals the g-cost of the final cell in a search from path[0].
// Cells are assumed passable; see ValidatePath.
func (g *Grid) PathCost(path []Coord) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += g.Value(path[i])
	}

	return total
}

// PathCostInclusive returns the sum of cell values over every cell of path,
// start included. Kept for reports that quote the whole-route figure.
func (g *Grid) PathCostInclusive(path []Coord) float64 {
	if len(path) == 0 {
		return 0
	}

	return g.Value(path[0]) + g.PathCost(path)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
