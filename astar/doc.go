// Package astar finds minimum-cost paths on a gridgraph.Grid with A*.
//
// What:
//
//   - FindPath / Search: best-first search from a start cell to a goal cell,
//     moving in the four orthogonal directions and paying the entry cost of
//     every cell entered. Search also reports the cost and the number of
//     expanded nodes.
//   - Stepper: the same search driven one expansion at a time, for bounded
//     runs, visualizers and debugging.
//   - Heuristics: Manhattan, Zero, Scaled and the default GridManhattan.
//
// Algorithm:
//
//  1. Push the start with g = 0 and h from the estimator.
//  2. Pop the open node with the smallest f = g + h; ties go to the node
//     discovered first. Neighbors are discovered right, down, left, up.
//  3. If it is the goal, follow predecessor links back to the start and
//     return the reversed chain. This happens before expansion, so
//     start == goal returns [start].
//  4. Otherwise close it and relax each neighbor that is not closed: insert a
//     new node, or update an open one in place when the candidate g is
//     strictly smaller.
//  5. An empty frontier means no path: the result is empty and the error nil.
//
// Open set:
//
//   - Nodes live in a per-call arena; predecessors are arena indices and a
//     dense cell → arena table gives O(1) lookup.
//   - The frontier is a container/heap min-heap that tracks each node's
//     position, so improvements use heap.Fix (true decrease-key, no stale
//     entries). Each cell enters the heap at most once.
//
// Heuristic:
//
//   - The default is Manhattan distance scaled by the grid's cheapest
//     passable cell cost, which is admissible and consistent for any
//     non-negative costs, including grids with costs below 1.
//   - A custom heuristic from WithHeuristic must be admissible for optimal
//     results; a closed cell is never reopened.
//
// Cost convention:
//
//   - Result.Cost sums the entry costs of every path cell except the start.
//
// Complexity:
//
//   - Time:  O(V log V), V = number of cells.
//   - Space: O(V).
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds, ErrBlockedEndpoint: invalid input, checked
//     before the search starts.
//   - ErrOptionViolation: an invalid option.
//   - ErrExpansionLimit: WithMaxExpansions was exhausted.
//   - ctx.Err(): the WithContext context was cancelled.
//
// Concurrency:
//
//   - A search is synchronous and keeps all state per call. Grids are
//     immutable, so any number of searches may share one grid.
package astar
