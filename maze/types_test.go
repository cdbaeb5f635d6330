package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmaze/maze"
)

func TestCoordinate(t *testing.T) {
	c := maze.At(1, 3)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 3, c.Column)
	assert.Equal(t, "[1, 3]", c.String())
	assert.Equal(t, maze.Coordinate{Row: 1, Column: 3}, c)
	assert.NotEqual(t, maze.At(3, 1), c)

	// no range validation at this layer
	assert.Equal(t, "[-2, 0]", maze.At(-2, 0).String())
}

func TestCoordinate_Move(t *testing.T) {
	c := maze.At(2, 2)
	assert.Equal(t, maze.At(3, 2), c.Move(maze.South))
	assert.Equal(t, maze.At(2, 3), c.Move(maze.East))
	assert.Equal(t, maze.At(2, 1), c.Move(maze.West))
	assert.Equal(t, maze.At(1, 2), c.Move(maze.North))
}

// TestSearchOrder pins the probe priority independently of any grid.
func TestSearchOrder(t *testing.T) {
	want := [4][2]int{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}
	names := [4]string{"south", "east", "west", "north"}
	for i, d := range maze.SearchOrder {
		assert.Equal(t, want[i], [2]int{d.DRow, d.DColumn}, "direction %d", i)
		assert.Equal(t, names[i], d.Name)
	}
}

func TestCell_Classification(t *testing.T) {
	cases := []struct {
		cell        maze.Cell
		traversable bool
		wall        bool
	}{
		{maze.Hallway, true, false},
		{maze.Exit, true, false},
		{maze.Visited, false, false},
		{maze.Path, false, false},
		{maze.Wall, false, true},
		{maze.Cell('X'), false, true},
		{maze.Cell('|'), false, true},
		{maze.Cell('█'), false, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.traversable, tc.cell.Traversable(), "Traversable(%q)", rune(tc.cell))
		assert.Equal(t, tc.wall, tc.cell.IsWall(), "IsWall(%q)", rune(tc.cell))
	}
}
