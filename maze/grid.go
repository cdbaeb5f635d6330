package maze

import (
	"fmt"
	"strings"
)

// Grid owns a rectangular, mutable buffer of cells plus the start
// coordinate. The buffer is written only by the Solver. Build grids with
// NewGrid, FromStrings or Parse; the zero value holds no cells.
type Grid struct {
	cells [][]Cell
	start Coordinate
}

// NewGrid constructs a Grid from a non-empty rectangular buffer and a start
// coordinate. The buffer is deep-copied, so later changes to cells do not
// reach the Grid.
//
// Validation order:
//   - ErrEmptyGrid if there are no rows or no columns;
//   - ErrNonRectangular if any row length differs;
//   - ErrOutOfBounds if start row or column is ≤ 0 or ≥ the last index;
//   - ErrInvalidStart if the start cell is not a Hallway.
//
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]rune, start Coordinate) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if start.Row <= 0 || start.Column <= 0 || start.Row >= rows-1 || start.Column >= cols-1 {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if got := Cell(cells[start.Row][start.Column]); got != Hallway {
		return nil, fmt.Errorf("%w: %v holds %q", ErrInvalidStart, start, rune(got))
	}

	buf := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		buf[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			buf[r][c] = Cell(cells[r][c])
		}
	}

	return &Grid{cells: buf, start: start}, nil
}

// FromStrings is NewGrid over one string per row. Rows are measured in
// characters, so multi-byte wall glyphs occupy a single cell.
func FromStrings(rows []string, start Coordinate) (*Grid, error) {
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
	}

	return NewGrid(cells, start)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return len(g.cells[0]) }

// Start returns the start coordinate.
func (g *Grid) Start() Coordinate { return g.start }

// InBounds reports whether c lies within the buffer.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Column >= 0 && c.Column < len(g.cells[0])
}

// Cell returns the marker at c; ok is false when c is outside the buffer.
func (g *Grid) Cell(c Coordinate) (cell Cell, ok bool) {
	if !g.InBounds(c) {
		return Wall, false
	}

	return g.cells[c.Row][c.Column], true
}

// set overwrites the marker at c. Callers must ensure c is in bounds.
func (g *Grid) set(c Coordinate, cell Cell) {
	g.cells[c.Row][c.Column] = cell
}

// at reads the marker at c, treating anything outside the buffer as a wall.
func (g *Grid) at(c Coordinate) Cell {
	cell, _ := g.Cell(c)

	return cell
}

// Render returns the rows top to bottom joined by '\n', without a trailing newline.
// Complexity: O(R×C).
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) * (len(g.cells[0]) + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(rune(cell))
		}
	}

	return sb.String()
}

// String implements fmt.Stringer via Render.
func (g *Grid) String() string { return g.Render() }

// Clone returns a deep copy of the grid, including any solver marks.
func (g *Grid) Clone() *Grid {
	buf := make([][]Cell, len(g.cells))
	for r, row := range g.cells {
		buf[r] = append([]Cell(nil), row...)
	}

	return &Grid{cells: buf, start: g.start}
}
