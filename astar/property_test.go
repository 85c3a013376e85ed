package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// costChoices mixes zero, fractional, integer and obstacle cells.
var costChoices = []float64{0, 0.1, 0.5, 1, 1, 2, 3, 7, gridgraph.Obstacle}

func randomGrid(r *rand.Rand, rows, cols int) *gridgraph.Grid {
	values := make([][]float64, rows)
	for i := range values {
		values[i] = make([]float64, cols)
		for j := range values[i] {
			values[i][j] = costChoices[r.Intn(len(costChoices))]
		}
	}

	return gridgraph.MustNew(values)
}

func randomPassable(r *rand.Rand, g *gridgraph.Grid) (gridgraph.Coord, bool) {
	var open []gridgraph.Coord
	for i := 0; i < g.Len(); i++ {
		if c := g.CoordOf(i); g.Passable(c) {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return gridgraph.Coord{}, false
	}

	return open[r.Intn(len(open))], true
}

// bruteForce enumerates every simple orthogonal path from start and returns
// the cheapest cost to reach goal, or +Inf when goal is unreachable.
func bruteForce(g *gridgraph.Grid, start, goal gridgraph.Coord) float64 {
	best := math.Inf(1)
	visited := make([]bool, g.Len())
	var walk func(c gridgraph.Coord, cost float64)
	walk = func(c gridgraph.Coord, cost float64) {
		if cost >= best {
			return
		}
		if c == goal {
			best = cost
			return
		}
		visited[g.Index(c)] = true
		for _, n := range g.Neighbors(c) {
			if !visited[g.Index(n)] {
				walk(n, cost+g.Value(n))
			}
		}
		visited[g.Index(c)] = false
	}
	walk(start, 0)

	return best
}

// assertWellFormed checks the structural path properties shared by every test.
func assertWellFormed(t *testing.T, g *gridgraph.Grid, res astar.Result, start, goal gridgraph.Coord) {
	t.Helper()
	require.NoError(t, g.ValidatePath(res.Path))
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	require.InDelta(t, g.PathCost(res.Path), res.Cost, 1e-9)
}

// TestProperty_OptimalAgainstBruteForce compares A* with exhaustive search
// on small random grids.
func TestProperty_OptimalAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(20240601))
	for trial := 0; trial < 400; trial++ {
		rows, cols := 1+r.Intn(3), 1+r.Intn(4)
		g := randomGrid(r, rows, cols)
		start, ok1 := randomPassable(r, g)
		goal, ok2 := randomPassable(r, g)
		if !ok1 || !ok2 {
			continue
		}

		res, err := astar.Search(g, start, goal)
		require.NoError(t, err)
		want := bruteForce(g, start, goal)

		if math.IsInf(want, 1) {
			require.False(t, res.Found, "trial %d: found a path where none exists", trial)
			require.Empty(t, res.Path)
			continue
		}
		require.True(t, res.Found, "trial %d: missed a path of cost %v", trial, want)
		assertWellFormed(t, g, res, start, goal)
		require.InDelta(t, want, res.Cost, 1e-9, "trial %d: %v -> %v", trial, start, goal)
	}
}

// TestProperty_OptimalAgainstDijkstra cross-checks larger grids against the
// cost field, and reachability against connected components.
func TestProperty_OptimalAgainstDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 150; trial++ {
		g := randomGrid(r, 5+r.Intn(12), 5+r.Intn(12))
		start, ok1 := randomPassable(r, g)
		goal, ok2 := randomPassable(r, g)
		if !ok1 || !ok2 {
			continue
		}

		res, err := astar.Search(g, start, goal)
		require.NoError(t, err)
		field, err := dijkstra.Distances(g, start)
		require.NoError(t, err)
		want, reachable := field.CostTo(goal)

		require.Equal(t, reachable, res.Found, "trial %d", trial)
		require.Equal(t, g.Connected(start, goal), res.Found, "trial %d", trial)
		if !reachable {
			continue
		}
		assertWellFormed(t, g, res, start, goal)
		require.InDelta(t, want, res.Cost, 1e-9, "trial %d", trial)
	}
}

// TestProperty_ManhattanLengthOnOpenGrid: with no obstacles and uniform
// costs the path has exactly Manhattan-distance steps.
func TestProperty_ManhattanLengthOnOpenGrid(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, cost := range []float64{1, 0.3, 4} {
		values := make([][]float64, 9)
		for i := range values {
			values[i] = make([]float64, 11)
			for j := range values[i] {
				values[i][j] = cost
			}
		}
		g := gridgraph.MustNew(values)

		for trial := 0; trial < 50; trial++ {
			start := gridgraph.Coord{Row: r.Intn(9), Col: r.Intn(11)}
			goal := gridgraph.Coord{Row: r.Intn(9), Col: r.Intn(11)}

			res, err := astar.Search(g, start, goal)
			require.NoError(t, err)
			steps := astar.Manhattan(start, goal)
			assert.Equal(t, int(steps), len(res.Path)-1)
			assert.InDelta(t, steps*cost, res.Cost, 1e-9)
		}
	}
}

// TestProperty_Idempotent runs the same random query twice.
func TestProperty_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		g := randomGrid(r, 8, 8)
		start, ok1 := randomPassable(r, g)
		goal, ok2 := randomPassable(r, g)
		if !ok1 || !ok2 {
			continue
		}
		a, errA := astar.FindPath(g, start, goal)
		b, errB := astar.FindPath(g, start, goal)
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, a, b)
	}
}
