package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single maze row read by Parse.
const maxLineBytes = 1 << 20

// Parse reads a maze definition:
//
//	<rows> <columns>
//	<startRow> <startColumn>
//	<rows lines of at least <columns> characters>
//
// Rows are measured in characters, not bytes; characters beyond the
// declared column count are ignored. Structural problems are reported as
// ErrMalformedInput; the resulting buffer is then validated by NewGrid.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++

		return sc.Text(), true
	}

	header, ok := next()
	if !ok {
		return nil, malformed(sc.Err(), "missing dimensions line")
	}
	rows, cols, err := intPair(header)
	if err != nil {
		return nil, malformed(err, "line %d: dimensions", line)
	}
	if rows <= 0 || cols <= 0 {
		return nil, malformed(nil, "line %d: dimensions %dx%d must be positive", line, rows, cols)
	}

	startLine, ok := next()
	if !ok {
		return nil, malformed(sc.Err(), "missing start line")
	}
	sr, scol, err := intPair(startLine)
	if err != nil {
		return nil, malformed(err, "line %d: start", line)
	}
	if sr < 0 || sr >= rows || scol < 0 || scol >= cols {
		return nil, malformed(nil, "line %d: start [%d, %d] outside %dx%d", line, sr, scol, rows, cols)
	}

	cells := make([][]rune, rows)
	for i := 0; i < rows; i++ {
		text, ok := next()
		if !ok {
			return nil, malformed(sc.Err(), "expected %d rows, got %d", rows, i)
		}
		row := []rune(text)
		if len(row) < cols {
			return nil, malformed(nil, "line %d: row %d has %d characters, want %d", line, i, len(row), cols)
		}
		cells[i] = row[:cols]
	}

	return NewGrid(cells, At(sr, scol))
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// intPair parses exactly two whitespace-separated integers.
func intPair(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 integers, got %d fields", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// malformed wraps ErrMalformedInput with a formatted reason and an optional cause.
func malformed(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedInput, msg, cause)
	}

	return fmt.Errorf("%w: %s", ErrMalformedInput, msg)
}
