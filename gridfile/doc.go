// Package gridfile reads grid documents: the cost map plus optional start,
// goal and search settings, stored as YAML.
//
//	cells:
//	  - [0.1, 0.2, 0.3]
//	  - [0.2, "#", 0.2]
//	start: [0, 0]
//	goal: [1, 2]
//	search:
//	  heuristic: manhattan   # manhattan | zero
//	  max_expansions: 0      # 0 = unlimited
//
// A cell is a number (-1 for an obstacle) or one of "#", "x", "X". Null cells
// are rejected.
//
// heuristic "manhattan" (also the default) means Manhattan distance times the
// grid's cheapest cell cost, which never overestimates on costs below 1.
package gridfile
