package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid builds an n×n grid with costs in [0,1) and roughly 20% obstacles.
func randomGrid(n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	grid := make([][]float64, n)
	for y := 0; y < n; y++ {
		row := make([]float64, n)
		for x := 0; x < n; x++ {
			if r.Float64() < 0.2 {
				row[x] = gridgraph.Obstacle
			} else {
				row[x] = r.Float64()
			}
		}
		grid[y] = row
	}

	return grid
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 1000×1000 grid.
// Complexity: O(R×C×4)
func BenchmarkConnectedComponents(b *testing.B) {
	g, err := gridgraph.New(randomGrid(1000, 42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkAppendNeighbors measures the allocation-free neighbor scan.
func BenchmarkAppendNeighbors(b *testing.B) {
	g, err := gridgraph.New(randomGrid(64, 7))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	buf := make([]gridgraph.Coord, 0, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendNeighbors(buf[:0], g.CoordOf(i%g.Len()))
	}
}
