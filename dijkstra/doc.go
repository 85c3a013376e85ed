// Package dijkstra computes single-source cost fields over a gridgraph.Grid.
//
// Overview:
//
//   - Distances computes, for every cell, the minimum total entry cost of an
//     orthogonal walk from a source cell, together with a predecessor table.
//   - Field.PathTo rebuilds the cheapest path to any reached cell.
//   - It is A* with a zero heuristic and no goal, so it doubles as a reference
//     oracle for the astar package and as a reachability map for the CLI.
//
// Key features:
//
//   - Functional options: WithMaxCost caps exploration, WithTarget stops early.
//   - Lazy decrease-key: improved cells are pushed again and stale entries are
//     skipped when popped.
//   - Deterministic: equal-cost heap entries pop in row-major index order and a
//     predecessor is only replaced by a strictly cheaper one.
//
// Performance and complexity:
//
//   - Time:  O(V log V), V = number of cells (each cell has at most 4 neighbors).
//   - Space: O(V).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:       nil grid.
//   - ErrSourceOutside: source outside the grid.
//   - ErrSourceBlocked: source is an obstacle.
//   - ErrBadMaxCost:    negative or NaN MaxCost.
package dijkstra
