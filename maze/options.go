package maze

import "go.uber.org/zap"

// Option configures optional behavior of the Solver.
// Use with NewSolver(g, opts...) or Solve(g, opts...).
type Option func(*SolverOptions)

// SolverOptions holds hooks and the logger used during a search.
// Hooks run synchronously inside the search loop and must not touch the Grid.
type SolverOptions struct {
	// Logger receives a debug trace of visits and backtracks and an info
	// entry when a run terminates. Defaults to zap.NewNop().
	Logger *zap.Logger

	// OnVisit, if non-nil, is invoked each time the frontier top is marked Visited.
	// A cell revisited after backtracking triggers the hook again.
	OnVisit func(c Coordinate)

	// OnBacktrack, if non-nil, is invoked when a dead end is popped.
	OnBacktrack func(c Coordinate)
}

// DefaultOptions returns SolverOptions with a no-op logger and no hooks.
func DefaultOptions() SolverOptions {
	return SolverOptions{
		Logger:      zap.NewNop(),
		OnVisit:     nil,
		OnBacktrack: nil,
	}
}

// WithLogger returns an Option that routes solver logging to l.
// Passing nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *SolverOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(c Coordinate)) Option {
	return func(o *SolverOptions) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the dead-end hook.
func WithOnBacktrack(fn func(c Coordinate)) Option {
	return func(o *SolverOptions) {
		o.OnBacktrack = fn
	}
}
