// Package gridpath plans minimum-cost routes over weighted 2-D grid maps.
//
// A map is a rectangle of cells. Each cell holds a non-negative entry cost
// (the time to drive into it) or -1 for an obstacle. A robot moves right,
// down, left or up, one cell per step, and pays the cost of every cell it
// enters.
//
// Under the hood, everything is organized in small packages:
//
//	gridgraph/  immutable Grid, Coord, neighbors, components, path checks
//	astar/      A* search: FindPath, Search, Stepper, heuristics, options
//	dijkstra/   single-source cost field over a grid
//	builder/    seeded random cost maps
//	gridfile/   YAML grid documents (cells, start, goal, search settings)
//	render/     text and lipgloss views of maps, paths, fields, components
//	cmd/gridpath  CLI: find, field, components, generate
//
// Quick example:
//
//	g := gridgraph.MustNew([][]float64{
//		{0.1, 0.2, 0.3},
//		{0.2,  -1, 0.2},
//		{0.3, 0.2, 0.1},
//	})
//	path, err := astar.FindPath(g, gridgraph.Coord{}, gridgraph.Coord{Row: 2, Col: 2})
//
// path runs start → goal inclusive; nil with a nil error means unreachable.
package gridpath
