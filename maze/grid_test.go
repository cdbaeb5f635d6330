package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

// TestNewGrid_Errors verifies every construction-time rejection.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		start maze.Coordinate
		err   error
	}{
		{"EmptyRows", []string{}, maze.At(1, 1), maze.ErrEmptyGrid},
		{"EmptyCols", []string{""}, maze.At(1, 1), maze.ErrEmptyGrid},
		{"NonRectangular", []string{"###", "# ", "###"}, maze.At(1, 1), maze.ErrNonRectangular},
		{"RowZero", []string{"# #", "# #", "###"}, maze.At(0, 1), maze.ErrOutOfBounds},
		{"ColumnZero", []string{"###", "  #", "###"}, maze.At(1, 0), maze.ErrOutOfBounds},
		{"LastRow", []string{"###", "# #", "# #"}, maze.At(2, 1), maze.ErrOutOfBounds},
		{"LastColumn", []string{"###", "#  ", "###"}, maze.At(1, 2), maze.ErrOutOfBounds},
		{"BeyondRows", []string{"###", "# #", "###"}, maze.At(7, 1), maze.ErrOutOfBounds},
		{"Negative", []string{"###", "# #", "###"}, maze.At(-1, 1), maze.ErrOutOfBounds},
		{"StartOnWall", []string{"###", "###", "###"}, maze.At(1, 1), maze.ErrInvalidStart},
		{"StartOnExit", []string{"###", "#E#", "###"}, maze.At(1, 1), maze.ErrInvalidStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.FromStrings(tc.rows, tc.start)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGrid_Accessors(t *testing.T) {
	rows := []string{
		"#####",
		"#  E#",
		"#####",
	}
	g, err := maze.FromStrings(rows, maze.At(1, 1))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Columns())
	assert.Equal(t, maze.At(1, 1), g.Start())
	assert.Equal(t, "#####\n#  E#\n#####", g.Render())
	assert.Equal(t, g.Render(), g.String())

	cell, ok := g.Cell(maze.At(1, 3))
	assert.True(t, ok)
	assert.Equal(t, maze.Exit, cell)

	_, ok = g.Cell(maze.At(3, 0))
	assert.False(t, ok)
}

func TestGrid_InBounds(t *testing.T) {
	g, err := maze.FromStrings([]string{"###", "# #", "###", "###"}, maze.At(1, 1))
	require.NoError(t, err)

	for _, c := range []maze.Coordinate{maze.At(0, 0), maze.At(3, 2), maze.At(1, 1)} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []maze.Coordinate{maze.At(-1, 0), maze.At(4, 0), maze.At(0, 3), maze.At(2, -1)} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

// TestNewGrid_CopiesBuffer checks that the caller's buffer is not aliased.
func TestNewGrid_CopiesBuffer(t *testing.T) {
	buf := [][]rune{
		[]rune("###"),
		[]rune("# #"),
		[]rune("###"),
	}
	g, err := maze.NewGrid(buf, maze.At(1, 1))
	require.NoError(t, err)

	buf[1][1] = 'Z'
	cell, _ := g.Cell(maze.At(1, 1))
	assert.Equal(t, maze.Hallway, cell)
}

func TestGrid_Clone(t *testing.T) {
	g, err := maze.FromStrings([]string{"####", "#  #", "#E##", "####"}, maze.At(1, 1))
	require.NoError(t, err)
	cp := g.Clone()

	_, err = maze.Solve(g)
	require.NoError(t, err)

	assert.NotEqual(t, g.Render(), cp.Render(), "solving the original must not touch the clone")
	assert.Equal(t, "####\n#  #\n#E##\n####", cp.Render())
	assert.Equal(t, g.Start(), cp.Start())
}

// TestFromStrings_MultiByteGlyphs checks that rows are measured in
// characters: a 3-byte wall glyph occupies one cell and renders unchanged.
func TestFromStrings_MultiByteGlyphs(t *testing.T) {
	g, err := maze.FromStrings([]string{"█████", "█  E█", "█████"}, maze.At(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Columns())

	cell, ok := g.Cell(maze.At(1, 0))
	require.True(t, ok)
	assert.Equal(t, maze.Cell('█'), cell)
	assert.True(t, cell.IsWall())

	res, err := maze.Solve(g)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "█████\n█..E█\n█████", res.Maze)
}
