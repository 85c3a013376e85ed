package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath returns a minimum-cost path from start to goal over g, moving in
// the four orthogonal directions and paying each entered cell's cost.
//
// The path runs start → goal inclusive. An empty (nil) path with a nil error
// means the goal is unreachable; that is not an error condition. Errors are
// reserved for invalid input (see Search).
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) ([]gridgraph.Coord, error) {
	res, err := Search(g, start, goal, opts...)

	return res.Path, err
}

// Search runs A* from start to goal and reports the path, its cost and the
// number of expanded nodes.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds (ErrOutOfBounds).
//  4. start and goal must not be obstacles (ErrBlockedEndpoint).
//
// During the run it may also return ErrExpansionLimit or the context's error.
// In every error case the returned Result has a nil Path.
//
// Complexity:
//
//   - Time:  O(V log V), V = number of cells; each cell enters the open set
//     at most once and is re-prioritized in place on improvement.
//   - Space: O(V).
func Search(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (Result, error) {
	s, err := NewStepper(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Run()
}

// validate checks the grid and endpoints before any state is built.
func validate(g *gridgraph.Grid, start, goal gridgraph.Coord, cfg *Options) error {
	if g == nil {
		return ErrNilGrid
	}
	if cfg.err != nil {
		return fmt.Errorf("%w: %v", ErrOptionViolation, cfg.err)
	}
	for _, c := range [2]gridgraph.Coord{start, goal} {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
		}
	}
	for _, c := range [2]gridgraph.Coord{start, goal} {
		if !g.Passable(c) {
			return fmt.Errorf("%w: %s", ErrBlockedEndpoint, c)
		}
	}

	return nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g         *gridgraph.Grid // The input grid; read-only.
	options   Options
	heuristic Heuristic
	goal      gridgraph.Coord
	goalIdx   int

	nodes []node    // arena; index = discovery order
	slot  []int32   // cell index → arena index, -1 if undiscovered
	open  openQueue // frontier
	buf   []gridgraph.Coord

	expanded int
	current  gridgraph.Coord
	done     bool
	found    bool
	path     []gridgraph.Coord
	cost     float64
}

// newRunner allocates per-call state and pushes the start node.
func newRunner(g *gridgraph.Grid, start, goal gridgraph.Coord, cfg Options) *runner {
	r := &runner{
		g:         g,
		options:   cfg,
		heuristic: cfg.Heuristic,
		goal:      goal,
		goalIdx:   g.Index(goal),
		slot:      make([]int32, g.Len()),
		buf:       make([]gridgraph.Coord, 0, 4),
	}
	if r.heuristic == nil {
		r.heuristic = GridManhattan(g)
	}
	for i := range r.slot {
		r.slot[i] = -1
	}
	r.open.r = r
	heap.Init(&r.open)

	r.discover(start, 0, -1)

	return r
}

// discover appends a new open node for c and pushes it onto the frontier.
func (r *runner) discover(c gridgraph.Coord, g float64, parent int32) {
	h := r.heuristic(c, r.goal)
	id := int32(len(r.nodes))
	cell := r.g.Index(c)
	r.nodes = append(r.nodes, node{
		cell:    cell,
		g:       g,
		h:       h,
		f:       g + h,
		parent:  parent,
		heapIdx: -1,
	})
	r.slot[cell] = id
	heap.Push(&r.open, id)
}

// step performs one iteration of the main loop: pop the cheapest open node,
// stop if it is the goal, otherwise close it and relax its neighbors.
// It returns ErrExpansionLimit instead of popping once the limit is spent.
func (r *runner) step() error {
	if r.done {
		return nil
	}
	// 1) Exhausted frontier: no path.
	if r.open.Len() == 0 {
		r.done = true
		return nil
	}
	// 2) Bounded variant: refuse to expand past the limit.
	if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
		return ErrExpansionLimit
	}

	// 3) Pop minimum f (earliest discovered on ties).
	id := heap.Pop(&r.open).(int32)
	r.expanded++
	cur := &r.nodes[id]
	r.current = r.g.CoordOf(cur.cell)

	// 4) Goal check happens before expansion, so start == goal yields [start].
	if cur.cell == r.goalIdx {
		r.done, r.found = true, true
		r.cost = cur.g
		r.path = r.reconstruct(id)
		return nil
	}

	// 5) Close: with a consistent heuristic and non-negative costs g is final.
	cur.closed = true
	r.relax(id)

	return nil
}

// relax examines every passable neighbor of node id and inserts or improves
// its open entry. Closed neighbors are never reopened.
func (r *runner) relax(id int32) {
	// Copy what we need: discover may grow the arena and move cur.
	g := r.nodes[id].g
	r.buf = r.g.AppendNeighbors(r.buf[:0], r.current)

	for _, nc := range r.buf {
		// Candidate cost pays the neighbor's entry cost, not the current cell's.
		cand := g + r.g.Value(nc)
		s := r.slot[r.g.Index(nc)]
		if s < 0 {
			r.discover(nc, cand, id)
			continue
		}
		m := &r.nodes[s]
		if m.closed || cand >= m.g {
			continue
		}
		m.g = cand
		m.f = cand + m.h
		m.parent = id
		heap.Fix(&r.open, m.heapIdx)
	}
}

// pathCopy returns a copy of the found path, or nil.
func (r *runner) pathCopy() []gridgraph.Coord {
	if r.path == nil {
		return nil
	}

	return append([]gridgraph.Coord(nil), r.path...)
}

// reconstruct follows parent links from id back to the start and returns the
// coordinates in start → goal order.
func (r *runner) reconstruct(id int32) []gridgraph.Coord {
	n := 0
	for at := id; at >= 0; at = r.nodes[at].parent {
		n++
	}
	path := make([]gridgraph.Coord, n)
	for at := id; at >= 0; at = r.nodes[at].parent {
		n--
		path[n] = r.g.CoordOf(r.nodes[at].cell)
	}

	return path
}

// result snapshots the runner's outcome. Path is a fresh copy.
func (r *runner) result() Result {
	return Result{
		Path:     r.pathCopy(),
		Cost:     r.cost,
		Expanded: r.expanded,
		Found:    r.found,
	}
}
