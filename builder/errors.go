package builder

import "errors"

// ErrTooSmall indicates a grid dimension below one.
var ErrTooSmall = errors.New("builder: grid dimensions must be at least 1x1")

// ErrNeedRandSource indicates a stochastic request without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOpenOutside indicates a WithOpen cell outside the requested grid.
var ErrOpenOutside = errors.New("builder: open cell outside the grid")
