package astar

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Snapshot exposes the state of the search after one Step.
type Snapshot struct {
	Current  gridgraph.Coord // cell expanded by this step; unset when the frontier was already empty
	Expanded int             // total expansions so far
	Open     int             // frontier size after this step
	Done     bool
	Found    bool
	Path     []gridgraph.Coord // set once Found; a copy owned by the caller
	Cost     float64           // set once Found
}

// Stepper drives a search one expansion at a time, for bounded runs,
// visualizers and debugging. Search is a Stepper run to completion, so both
// produce identical results for identical input.
type Stepper struct {
	r      *runner
	ctx    context.Context
	logger *slog.Logger
	start  gridgraph.Coord
}

// NewStepper validates input exactly like Search and returns a Stepper
// positioned before the first expansion.
func NewStepper(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, start, goal, &cfg); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("astar: search start",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Int("rows", g.Rows),
		slog.Int("cols", g.Cols),
		slog.Int("max_expansions", cfg.MaxExpansions),
	)

	return &Stepper{
		r:      newRunner(g, start, goal, cfg),
		ctx:    cfg.Ctx,
		logger: cfg.Logger,
		start:  start,
	}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// After the search is done, further calls return the final snapshot.
func (s *Stepper) Step() (Snapshot, error) {
	if !s.r.done {
		if err := s.ctx.Err(); err != nil {
			return s.snapshot(), err
		}
		before := s.r.expanded
		if err := s.r.step(); err != nil {
			return s.snapshot(), err
		}
		if s.r.expanded == before {
			s.r.current = gridgraph.Coord{}
		}
		if s.r.done {
			s.logDone()
		}
	}

	return s.snapshot(), nil
}

// Run steps until the search is done or fails.
// On error the returned Result carries the expansion count but no path.
func (s *Stepper) Run() (Result, error) {
	for !s.r.done {
		if _, err := s.Step(); err != nil {
			s.logger.Debug("astar: search aborted",
				slog.Int("expanded", s.r.expanded),
				slog.String("error", err.Error()),
			)
			return Result{Expanded: s.r.expanded}, err
		}
	}

	return s.r.result(), nil
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool { return s.r.done }

// Result returns the outcome so far. Path is nil until the goal is reached
// and is a fresh copy on every call.
func (s *Stepper) Result() Result { return s.r.result() }

// OpenCells lists the coordinates currently on the frontier, in heap order.
func (s *Stepper) OpenCells() []gridgraph.Coord {
	out := make([]gridgraph.Coord, 0, len(s.r.open.items))
	for _, id := range s.r.open.items {
		out = append(out, s.r.g.CoordOf(s.r.nodes[id].cell))
	}

	return out
}

// ClosedCells lists the finalized coordinates in discovery order.
func (s *Stepper) ClosedCells() []gridgraph.Coord {
	var out []gridgraph.Coord
	for i := range s.r.nodes {
		if s.r.nodes[i].closed {
			out = append(out, s.r.g.CoordOf(s.r.nodes[i].cell))
		}
	}

	return out
}

func (s *Stepper) snapshot() Snapshot {
	return Snapshot{
		Current:  s.r.current,
		Expanded: s.r.expanded,
		Open:     s.r.open.Len(),
		Done:     s.r.done,
		Found:    s.r.found,
		Path:     s.r.pathCopy(),
		Cost:     s.r.cost,
	}
}

func (s *Stepper) logDone() {
	s.logger.Debug("astar: search done",
		slog.String("start", s.start.String()),
		slog.String("goal", s.r.goal.String()),
		slog.Bool("found", s.r.found),
		slog.Float64("cost", s.r.cost),
		slog.Int("expanded", s.r.expanded),
		slog.Int("path_len", len(s.r.path)),
	)
}
