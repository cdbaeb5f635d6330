package maze

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/stack"
)

// Solver runs depth-first search over a Grid and keeps the last solution.
// It mutates the Grid in place; at most one Solve may run on a Grid at a time.
type Solver struct {
	grid     *Grid
	opts     SolverOptions
	frontier *stack.Stack[Coordinate] // nil until the first Solve
}

// NewSolver binds a Solver to g. Returns ErrGridNil if g is nil and
// ErrEmptyGrid if g was not built by NewGrid, FromStrings or Parse.
func NewSolver(g *Grid, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if len(g.cells) == 0 || len(g.cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	return &Solver{grid: g, opts: sopts}, nil
}

// Solve is a shorthand for NewSolver(g, opts...) followed by Solve.
func Solve(g *Grid, opts ...Option) (*Result, error) {
	s, err := NewSolver(g, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(), nil
}

// Grid returns the grid the solver writes to.
func (s *Solver) Grid() *Grid { return s.grid }

// Solve searches from the grid's start until the frontier top is an Exit
// (Found) or the frontier is empty (Exhausted).
//
// Each step marks the frontier top Visited and pushes the first neighbour in
// SearchOrder that is a Hallway or an Exit; with no such neighbour the top is
// popped. Exit cells are never marked. On Found the frontier is drained,
// cells still marked Visited become Path, and the frontier is rebuilt with
// the start at the bottom and the exit on top. Cells popped as dead ends
// keep their Visited mark.
//
// Complexity: O(R×C) time, O(R×C) memory for the frontier.
func (s *Solver) Solve() *Result {
	log := s.opts.Logger
	g := s.grid
	s.frontier = stack.New[Coordinate]()
	s.frontier.Push(g.start)

	res := &Result{Start: g.start}
	var (
		top  Coordinate
		next Coordinate
		d    Direction
	)
	for !s.frontier.IsEmpty() {
		top, _ = s.frontier.Peek()
		if g.at(top) == Exit {
			res.Found = true
			break
		}
		g.set(top, Visited)
		res.Expansions++
		if s.opts.OnVisit != nil {
			s.opts.OnVisit(top)
		}

		advanced := false
		for _, d = range SearchOrder {
			next = top.Move(d)
			if g.at(next).Traversable() {
				log.Debug("advance", zap.Stringer("from", top), zap.String("dir", d.Name))
				s.frontier.Push(next)
				advanced = true
				break
			}
		}
		if !advanced {
			_, _ = s.frontier.Pop()
			res.Backtracks++
			log.Debug("dead end", zap.Stringer("at", top))
			if s.opts.OnBacktrack != nil {
				s.opts.OnBacktrack(top)
			}
		}
	}

	if res.Found {
		res.Exit = top
		res.Path = s.markPath()
		res.Steps = len(res.Path)
		log.Info("exit found",
			zap.Stringer("start", res.Start),
			zap.Stringer("exit", res.Exit),
			zap.Int("steps", res.Steps),
			zap.Int("backtracks", res.Backtracks))
	} else {
		log.Info("no exit found",
			zap.Stringer("start", res.Start),
			zap.Int("expansions", res.Expansions))
	}
	res.Maze = g.Render()

	return res
}

// markPath drains the frontier, relabels Visited cells as Path and rebuilds
// the frontier bottom=start, top=exit. It returns the path start first.
func (s *Solver) markPath() []Coordinate {
	n := s.frontier.Len()
	popped := make([]Coordinate, 0, n) // exit first
	for !s.frontier.IsEmpty() {
		c, _ := s.frontier.Pop()
		if s.grid.at(c) == Visited {
			s.grid.set(c, Path)
		}
		popped = append(popped, c)
	}

	path := make([]Coordinate, n)
	for i := n - 1; i >= 0; i-- {
		s.frontier.Push(popped[i])
		path[n-1-i] = popped[i]
	}

	return path
}

// PathToFollow returns a copy of the solution frontier: start at the bottom,
// exit on top. After an Exhausted run the copy is empty.
// Returns ErrNoPathComputed if Solve has not run yet.
func (s *Solver) PathToFollow() (*stack.Stack[Coordinate], error) {
	if s.frontier == nil {
		return nil, ErrNoPathComputed
	}

	return s.frontier.Clone(), nil
}
