package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// checkHeap verifies heapIdx bookkeeping and the (f, discovery) heap order.
func checkHeap(t *testing.T, r *runner) {
	t.Helper()
	for i, id := range r.open.items {
		require.Equal(t, i, r.nodes[id].heapIdx, "heapIdx out of sync for node %d", id)
		require.False(t, r.nodes[id].closed, "closed node %d still on the frontier", id)
		if i > 0 {
			parent := (i - 1) / 2
			require.False(t, r.open.Less(i, parent), "heap order violated at %d", i)
		}
	}
}

// In this grid (0,2) is first discovered from (1,2) with g=7 and later
// improved to g=6 through (0,1); the open entry must be updated in place.
//
//	2 5 1 #
//	1 3 2 5
func TestRelax_DecreaseKeyInPlace(t *testing.T) {
	g := gridgraph.MustNew([][]float64{
		{2, 5, 1, -1},
		{1, 3, 2, 5},
	})
	start, goal := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 3}
	cfg := DefaultOptions()
	r := newRunner(g, start, goal, cfg)

	target := g.Index(gridgraph.Coord{Row: 0, Col: 2})
	via := g.Index(gridgraph.Coord{Row: 0, Col: 1})
	var seen []float64
	for !r.done {
		require.NoError(t, r.step())
		checkHeap(t, r)
		if s := r.slot[target]; s >= 0 {
			if n := len(seen); n == 0 || seen[n-1] != r.nodes[s].g {
				seen = append(seen, r.nodes[s].g)
			}
		}
	}

	assert.Equal(t, []float64{7, 6}, seen)
	n := r.nodes[r.slot[target]]
	assert.Equal(t, r.slot[via], n.parent)
	assert.Equal(t, 8.0, n.f)

	require.True(t, r.found)
	assert.Equal(t, 11.0, r.cost)
	assert.Len(t, r.nodes, 7, "each cell is discovered once")
}

// Arena indices record discovery order; the start is always node 0.
func TestRunner_ArenaOrder(t *testing.T) {
	g := gridgraph.MustNew([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	r := newRunner(g, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 0, Col: 0}, DefaultOptions())
	require.NoError(t, r.step())

	want := []gridgraph.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 1}}
	require.Len(t, r.nodes, len(want))
	for i, c := range want {
		assert.Equal(t, g.Index(c), r.nodes[i].cell)
	}
	assert.Equal(t, int32(-1), r.nodes[0].parent)
	assert.True(t, r.nodes[0].closed)
}
