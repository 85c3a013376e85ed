package gridgraph

// ConnectedComponents finds all 4-connected regions of passable cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major scan order.
//
// To convert an index back to a coordinate, use CoordOf.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int
	var buf []Coord

	for i0 := range g.cells {
		if seen[i0] || g.cells[i0] == Obstacle {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			buf = g.AppendNeighbors(buf[:0], g.CoordOf(u))
			for _, n := range buf {
				vi := g.Index(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentLabels returns, for every cell index, the number of the component
// that contains it (as ordered by ConnectedComponents), or -1 for obstacles.
func (g *Grid) ComponentLabels() []int {
	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range g.ConnectedComponents() {
		for _, i := range comp {
			labels[i] = id
		}
	}

	return labels
}

// Connected reports whether a and b are passable and lie in the same region,
// which is exactly when a path between them exists.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	labels := g.ComponentLabels()

	return labels[g.Index(a)] == labels[g.Index(b)]
}
