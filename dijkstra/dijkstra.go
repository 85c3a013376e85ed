// Package dijkstra implements Dijkstra's algorithm over a gridgraph.Grid.
//
// The cost of a step is the entry cost of the cell being entered, so the
// cost of the source is 0 and every other reached cell holds the minimum
// sum of entry costs along any orthogonal path from the source.
//
// Complexity:
//
//   - Time:  O(V log V) where V = number of cells.
//   - Each cell is finalized at most once: V extractions from the heap.
//   - Each relaxation may push a new entry: at most 4 per finalized cell.
//   - Space: O(V) for cost, predecessor and visited slices plus the heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum cost in the heap exceeds MaxCost.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Distances computes the cheapest entry-cost field from source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. source must be in bounds (ErrSourceOutside).
//  3. source must not be an obstacle (ErrSourceBlocked).
//  4. MaxCost must be ≥ 0 (ErrBadMaxCost).
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Distances(g *gridgraph.Grid, source gridgraph.Coord, opts ...Option) (*Field, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %s", ErrSourceOutside, source)
	}
	if !g.Passable(source) {
		return nil, fmt.Errorf("%w: %s", ErrSourceBlocked, source)
	}
	if cfg.MaxCost < 0 || math.IsNaN(cfg.MaxCost) {
		return nil, ErrBadMaxCost
	}

	// 3) Prepare per-cell state
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		cost:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(cellPQ, 0, n),
	}

	// 4) Run
	r.init(source)
	r.process()

	return &Field{
		Source: source,
		Cost:   r.cost,
		Prev:   r.prev,
		grid:   g,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only.
	options Options         // Configuration (MaxCost, Target).
	cost    []float64       // Cell index → current best cost from source.
	prev    []int           // Cell index → predecessor cell index.
	visited []bool          // Whether a cell's cost is finalized.
	pq      cellPQ          // Min-heap of cellItem for lazy priority queue.
	buf     []gridgraph.Coord
}

// init sets cost[v] = +Inf and prev[v] = -1 everywhere, then seeds the source at 0.
func (r *runner) init(source gridgraph.Coord) {
	for i := range r.cost {
		r.cost[i] = Unreached
		r.prev[i] = -1
	}
	s := r.g.Index(source)
	r.cost[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{idx: s, cost: 0})
}

// process is the core loop. It repeatedly extracts the cell with the minimum
// cost and relaxes its neighbors.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum cost in the heap exceeds MaxCost.
//   - The optional Target has been finalized.
func (r *runner) process() {
	var target = -1
	if r.options.HasTarget && r.g.InBounds(r.options.Target) {
		target = r.g.Index(r.options.Target)
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		u := item.idx

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.cost > r.options.MaxCost {
			break
		}
		r.visited[u] = true
		if u == target {
			return
		}

		r.relax(u)
	}
}

// relax attempts to improve the cost of every passable neighbor of u.
// Assumes r.cost[u] is final.
func (r *runner) relax(u int) {
	r.buf = r.g.AppendNeighbors(r.buf[:0], r.g.CoordOf(u))
	for _, nc := range r.buf {
		v := r.g.Index(nc)
		if r.visited[v] {
			continue
		}
		nd := r.cost[u] + r.g.Value(nc)
		if nd > r.options.MaxCost {
			continue
		}
		// Strictly better only; equal costs keep the first predecessor found.
		if nd >= r.cost[v] {
			continue
		}
		r.cost[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, cellItem{idx: v, cost: nd})
	}
}

// CostTo returns the cheapest cost to reach c and whether c was reached.
func (f *Field) CostTo(c gridgraph.Coord) (float64, bool) {
	if !f.grid.InBounds(c) {
		return Unreached, false
	}
	d := f.Cost[f.grid.Index(c)]

	return d, !math.IsInf(d, 1)
}

// PathTo rebuilds the cheapest path from Source to target by following Prev.
// Returns nil when target was not reached.
func (f *Field) PathTo(target gridgraph.Coord) []gridgraph.Coord {
	if _, ok := f.CostTo(target); !ok {
		return nil
	}
	var path []gridgraph.Coord
	for at := f.grid.Index(target); at >= 0; at = f.Prev[at] {
		path = append(path, f.grid.CoordOf(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Reached returns how many cells received a finite cost.
func (f *Field) Reached() int {
	n := 0
	for _, d := range f.Cost {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}

// cellItem represents a cell and its cost from the source.
type cellItem struct {
	idx  int     // row-major cell index
	cost float64 // cost from source
}

// cellPQ is a min-heap of cellItem ordered by cost ascending, then by index
// so that equal-cost pops are deterministic.
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].idx < pq[j].idx
}
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
