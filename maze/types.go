package maze

import "fmt"

// Coordinate addresses one cell by row and column. It is a value type:
// equality is ==, and it is never mutated after creation.
type Coordinate struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

// At returns the Coordinate (row, column).
func At(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// String renders the coordinate as "[row, column]".
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row, c.Column)
}

// Move returns the neighbour of c one step in direction d.
func (c Coordinate) Move(d Direction) Coordinate {
	return Coordinate{Row: c.Row + d.DRow, Column: c.Column + d.DColumn}
}

// Cell is a single character of the maze buffer.
type Cell rune

const (
	// Hallway is a traversable, unvisited cell.
	Hallway Cell = ' '
	// Exit is the goal marker.
	Exit Cell = 'E'
	// Visited marks a cell the search has entered.
	Visited Cell = 'V'
	// Path marks a cell on the confirmed solution.
	Path Cell = '.'
	// Wall is the canonical wall glyph; any unrecognized character is a wall too.
	Wall Cell = '#'
)

// Traversable reports whether the search may step into c.
func (c Cell) Traversable() bool {
	return c == Hallway || c == Exit
}

// IsWall reports whether c is outside the recognized marker set.
func (c Cell) IsWall() bool {
	switch c {
	case Hallway, Exit, Visited, Path:
		return false
	}

	return true
}

// Direction is a unit step on the grid.
type Direction struct {
	DRow, DColumn int
	Name          string
}

var (
	South = Direction{DRow: 1, DColumn: 0, Name: "south"}
	East  = Direction{DRow: 0, DColumn: 1, Name: "east"}
	West  = Direction{DRow: 0, DColumn: -1, Name: "west"}
	North = Direction{DRow: -1, DColumn: 0, Name: "north"}
)

// SearchOrder is the neighbour probe priority of the solver. The order
// decides which of several valid paths is found and must stay S, E, W, N.
var SearchOrder = [4]Direction{South, East, West, North}
