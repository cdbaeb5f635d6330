package maze

import "errors"

var (
	// ErrEmptyGrid indicates the buffer has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates the start coordinate touches or exceeds the outer border.
	ErrOutOfBounds = errors.New("maze: start coordinate must lie strictly inside the border")
	// ErrInvalidStart indicates the start cell is not a hallway.
	ErrInvalidStart = errors.New("maze: start cell is not a hallway")
	// ErrMalformedInput indicates the maze text could not be parsed.
	ErrMalformedInput = errors.New("maze: malformed maze definition")
	// ErrGridNil is returned when a nil *Grid is passed to the solver.
	ErrGridNil = errors.New("maze: grid is nil")
	// ErrNoPathComputed is returned by PathToFollow before any Solve.
	ErrNoPathComputed = errors.New("maze: no path computed yet")
)
