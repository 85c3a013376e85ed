// Package gridgraph treats a rectangular 2D grid of traversal costs as a graph
// of orthogonally adjacent cells.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 of cell costs. The sentinel value
//     Obstacle (-1) marks an impassable cell; any other value is the
//     non-negative cost paid to enter that cell.
//   - Neighbors enumerates the valid one-step moves from a cell in a fixed
//     order: right, down, left, up.
//   - ConnectedComponents groups passable cells into 4-connected regions.
//   - PathCost sums the entry costs along a path.
//
// Why:
//
//   - Robot and game maps: terrain with per-cell traversal time and walls.
//   - A shared, immutable model that several searches can read concurrently.
//
// Complexity:
//
//   - New:                 O(R×C) time and memory (deep copy + validation).
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(R×C) time, O(R×C) memory.
//   - PathCost:            O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCost:    a cell is negative (other than Obstacle), NaN or infinite.
//   - ErrInvalidPath:    a path is not a chain of orthogonal steps over passable cells.
package gridgraph
