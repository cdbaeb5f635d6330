package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/maze"
)

// report is the YAML form of one solve.
type report struct {
	File       string            `yaml:"file"`
	Found      bool              `yaml:"found"`
	Start      maze.Coordinate   `yaml:"start"`
	Exit       *maze.Coordinate  `yaml:"exit,omitempty"`
	Steps      int               `yaml:"steps"`
	Path       []maze.Coordinate `yaml:"path,omitempty"`
	Expansions int               `yaml:"expansions"`
	Backtracks int               `yaml:"backtracks"`
	Maze       string            `yaml:"maze,omitempty"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		format string
		noPath bool
		noGrid bool
	)
	cmd := &cobra.Command{
		Use:   "solve [maze-file]...",
		Short: "Solve one or more maze files",
		Long: `Parses each maze file, runs the depth-first search and prints a report.

Text reports match the classic narration:
  Path to follow from Start [1, 1] to Exit [1, 3] - 3 steps:
  [1, 1]
  ...
  <annotated maze>

A maze without a reachable exit is reported, not treated as an error.
Files that fail to parse are reported and make the command exit non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.cfg.Output
			if cmd.Flags().Changed("format") {
				out.Format = format
			}
			if noPath {
				out.ShowPath = false
			}
			if noGrid {
				out.ShowGrid = false
			}
			if out.Format != config.FormatText && out.Format != config.FormatYAML {
				return fmt.Errorf("unknown format %q (valid: text, yaml)", out.Format)
			}

			return a.solveFiles(cmd, args, out)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "report format: text or yaml")
	cmd.Flags().BoolVar(&noPath, "no-path", false, "omit the coordinate list")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "omit the annotated maze")

	return cmd
}

// solveFiles solves every file, continuing past failures, and returns the
// joined parse errors.
func (a *app) solveFiles(cmd *cobra.Command, paths []string, out config.OutputConfig) error {
	w := cmd.OutOrStdout()
	var enc *yaml.Encoder
	if out.Format == config.FormatYAML {
		enc = yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
	}

	var errs []error
	for i, path := range paths {
		g, err := maze.ParseFile(path)
		if err != nil {
			a.logger.Error("cannot load maze", zap.String("file", path), zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "mazesolve: %v\n", err)
			errs = append(errs, err)
			continue
		}

		a.logger.Info("solving", zap.String("file", path),
			zap.Int("rows", g.Rows()), zap.Int("columns", g.Columns()))
		res, err := maze.Solve(g, maze.WithLogger(a.logger.With(zap.String("file", path))))
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if enc != nil {
			if err = enc.Encode(newReport(path, res, out)); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fileHeader(cmd, len(paths) > 1, path)
		writeText(w, res, out)
	}

	return errors.Join(errs...)
}

func newReport(path string, res *maze.Result, out config.OutputConfig) report {
	r := report{
		File:       path,
		Found:      res.Found,
		Start:      res.Start,
		Steps:      res.Steps,
		Expansions: res.Expansions,
		Backtracks: res.Backtracks,
	}
	if res.Found {
		exit := res.Exit
		r.Exit = &exit
	}
	if out.ShowPath {
		r.Path = res.Path
	}
	if out.ShowGrid {
		r.Maze = res.Maze
	}

	return r
}

// writeText prints the narration, leaving out the sections disabled in out.
// With both sections enabled the output equals Result.Narrate.
func writeText(w io.Writer, res *maze.Result, out config.OutputConfig) {
	var sb strings.Builder
	if !res.Found {
		sb.WriteString(maze.NoExitNotice)
		if out.ShowGrid {
			sb.WriteString("\n\n")
			sb.WriteString(res.Maze)
		}
	} else {
		fmt.Fprintf(&sb, "Path to follow from Start %v to Exit %v - %d steps:", res.Start, res.Exit, res.Steps)
		if out.ShowPath {
			for _, c := range res.Path {
				sb.WriteByte('\n')
				sb.WriteString(c.String())
			}
		}
		if out.ShowGrid {
			sb.WriteByte('\n')
			sb.WriteString(res.Maze)
		}
	}
	fmt.Fprintln(w, sb.String())
}
