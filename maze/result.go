package maze

import (
	"fmt"
	"strings"
)

// NoExitNotice opens the narration of a run that never reached an Exit.
const NoExitNotice = "No exit found in maze!"

// Result captures the outcome of one Solve.
type Result struct {
	// Found reports whether an Exit was reached.
	Found bool `yaml:"found"`

	// Start is the grid's start coordinate.
	Start Coordinate `yaml:"start"`

	// Exit is the reached exit; zero when Found is false.
	Exit Coordinate `yaml:"exit"`

	// Steps is the number of coordinates on the path, start and exit included.
	Steps int `yaml:"steps"`

	// Path lists the coordinates from start to exit. Nil when Found is false.
	Path []Coordinate `yaml:"path"`

	// Expansions counts how many times a frontier top was marked Visited.
	Expansions int `yaml:"expansions"`

	// Backtracks counts dead-end pops.
	Backtracks int `yaml:"backtracks"`

	// Maze is the rendered grid after the run.
	Maze string `yaml:"maze"`
}

// Narrate formats the human-readable report.
//
// Exhausted:
//
//	No exit found in maze!
//	<blank line>
//	<grid>
//
// Found:
//
//	Path to follow from Start [r, c] to Exit [r, c] - N steps:
//	<one coordinate per line, start first>
//	<grid>
func (r *Result) Narrate() string {
	var sb strings.Builder
	if !r.Found {
		sb.WriteString(NoExitNotice)
		sb.WriteString("\n\n")
		sb.WriteString(r.Maze)

		return sb.String()
	}
	fmt.Fprintf(&sb, "Path to follow from Start %v to Exit %v - %d steps:\n", r.Start, r.Exit, r.Steps)
	for _, c := range r.Path {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	sb.WriteString(r.Maze)

	return sb.String()
}

// String implements fmt.Stringer via Narrate.
func (r *Result) String() string { return r.Narrate() }
