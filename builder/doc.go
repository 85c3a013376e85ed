// Package builder generates grid cost maps for tests, benchmarks and demos.
//
// What:
//
//	Grid(rows, cols, opts...) fills a rows×cols map in row-major order. For
//	each cell it draws once for "obstacle?" and once for the entry cost, so a
//	fixed seed always yields the same map regardless of which cells are kept
//	open.
//
// Options:
//
//	WithSeed / WithRand     – RNG source; required when obstacles are requested.
//	WithCostFn              – per-cell cost generator (default: constant 1).
//	WithUniformCost         – costs ~ U[min,max).
//	WithConstantCost        – every cell costs the same.
//	WithDecimals            – round costs to n decimals (0.1 steps with n=1).
//	WithObstacleRatio       – probability in [0,1) that a cell is an obstacle.
//	WithOpen                – cells that are never obstacles (start, goal…).
//
// Contract:
//
//	Option constructors validate their arguments and panic on meaningless
//	input; Grid itself never panics and returns sentinel errors.
//
// Complexity: O(rows·cols) time and space.
package builder
