// Package maze solves single-path character mazes by depth-first search.
//
// What:
//
//   - Grid owns a rectangular buffer of Cell markers and a start Coordinate.
//     It is built from a pre-made buffer (NewGrid, FromStrings) or from the
//     maze text format (Parse, ParseFile).
//   - Solver walks the Grid with a stack.Stack[Coordinate] frontier, probing
//     neighbours in the fixed order South, East, West, North, marking entered
//     cells Visited and, once the Exit is reached, relabelling the surviving
//     frontier as Path.
//   - Result carries the ordered path, counters and the rendered grid, and
//     Narrate formats the human-readable report.
//
// Maze text format:
//
//	<rows> <columns>
//	<startRow> <startColumn>
//	<row 0, exactly <columns> characters>
//	...
//
// Space is a hallway, 'E' is an exit, anything else is a wall. The solver
// writes 'V' (visited) and '.' (path) into the buffer, so those two
// characters must not appear in the input. Rows are counted in characters,
// so multi-byte wall glyphs such as '█' are fine.
//
// Complexity:
//
//   - Solve:   O(R×C) time; each cell is pushed at most once, Memory O(R×C).
//   - Parse:   O(R×C).
//   - Render:  O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: buffer shape is unusable.
//   - ErrOutOfBounds:     start touches or exceeds the outer border.
//   - ErrInvalidStart:    start cell is not a hallway.
//   - ErrMalformedInput:  maze text fails structural parsing.
//   - ErrGridNil:         nil grid handed to the solver.
//   - ErrNoPathComputed:  path requested before any Solve.
//
// A Grid is mutated in place by Solve. Grids and Solvers are not safe for
// concurrent use; solve a Clone when the original must stay pristine.
package maze
