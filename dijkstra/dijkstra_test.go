// Package dijkstra_test contains unit tests for the grid Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDistances_NilGrid(t *testing.T) {
	_, err := dijkstra.Distances(nil, gridgraph.Coord{})
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestDistances_SourceOutside(t *testing.T) {
	g := gridgraph.MustNew([][]float64{{0, 0}})
	_, err := dijkstra.Distances(g, gridgraph.Coord{Row: 1, Col: 0})
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutside)
}

func TestDistances_SourceBlocked(t *testing.T) {
	g := gridgraph.MustNew([][]float64{{-1, 0}})
	_, err := dijkstra.Distances(g, gridgraph.Coord{})
	assert.ErrorIs(t, err, dijkstra.ErrSourceBlocked)
}

func TestDistances_BadMaxCost(t *testing.T) {
	g := gridgraph.MustNew([][]float64{{0, 0}})
	_, err := dijkstra.Distances(g, gridgraph.Coord{}, dijkstra.WithMaxCost(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxCost)
	_, err = dijkstra.Distances(g, gridgraph.Coord{}, dijkstra.WithMaxCost(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxCost)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestDistances_SourceCostsZero(t *testing.T) {
	// Entering the source is free even when its own cell is expensive.
	g := gridgraph.MustNew([][]float64{{9, 1}})
	f, err := dijkstra.Distances(g, gridgraph.Coord{})
	require.NoError(t, err)

	d, ok := f.CostTo(gridgraph.Coord{})
	assert.True(t, ok)
	assert.Zero(t, d)
	assert.Equal(t, []gridgraph.Coord{{}}, f.PathTo(gridgraph.Coord{}))
}

func TestDistances_PrefersCheapDetour(t *testing.T) {
	// Straight across costs 9; going down, across and back up costs 1+1+1+0 = 3.
	g := gridgraph.MustNew([][]float64{
		{0, 9, 0},
		{1, 1, 1},
	})
	f, err := dijkstra.Distances(g, gridgraph.Coord{})
	require.NoError(t, err)

	goal := gridgraph.Coord{Row: 0, Col: 2}
	d, ok := f.CostTo(goal)
	require.True(t, ok)
	assert.InDelta(t, 3.0, d, 1e-12)
	path := f.PathTo(goal)
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}, path)
	assert.InDelta(t, d, g.PathCost(path), 1e-12)
}

func TestDistances_Unreachable(t *testing.T) {
	g := gridgraph.MustNew([][]float64{
		{0, -1, 0},
	})
	f, err := dijkstra.Distances(g, gridgraph.Coord{})
	require.NoError(t, err)

	d, ok := f.CostTo(gridgraph.Coord{Row: 0, Col: 2})
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, f.PathTo(gridgraph.Coord{Row: 0, Col: 2}))
	assert.Nil(t, f.PathTo(gridgraph.Coord{Row: 3, Col: 3}))
	assert.Equal(t, 1, f.Reached())
}

func TestDistances_Target(t *testing.T) {
	g := gridgraph.MustNew([][]float64{{0, 1, 1, 1, 1, 1}})
	f, err := dijkstra.Distances(g, gridgraph.Coord{}, dijkstra.WithTarget(gridgraph.Coord{Row: 0, Col: 1}))
	require.NoError(t, err)

	d, ok := f.CostTo(gridgraph.Coord{Row: 0, Col: 1})
	assert.True(t, ok)
	assert.Equal(t, 1.0, d)
	// Finalizing (0,1) stops the run before (0,2) is relaxed.
	_, ok = f.CostTo(gridgraph.Coord{Row: 0, Col: 3})
	assert.False(t, ok)
}
