// Command mazesolve reads maze definitions and solves them by depth-first search.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree with fresh state.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazesolve",
		Short: "Solve single-path character mazes by depth-first search",
		Long: `mazesolve reads maze files of the form

  <rows> <columns>
  <startRow> <startColumn>
  <row lines>

where ' ' is a hallway, 'E' an exit and anything else a wall, and prints the
path from the start to the first exit found. The search probes south, east,
west, then north; visited cells are drawn as 'V' and the final path as '.'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, err = logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.logger.Debug("configuration loaded", zap.String("path", a.configPath))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging (search trace)")

	root.AddCommand(
		newSolveCmd(a),
		newRenderCmd(a),
		newValidateCmd(a),
		newInitConfigCmd(a),
	)

	return root
}

// fileHeader separates per-file output when several files are given.
func fileHeader(cmd *cobra.Command, many bool, path string) {
	if many {
		fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", path)
	}
}
