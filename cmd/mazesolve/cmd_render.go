package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [maze-file]",
		Short: "Print a maze as loaded, without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := maze.ParseFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("rendering", zap.String("file", args[0]), zap.Stringer("start", g.Start()))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%dx%d, start %v\n", g.Rows(), g.Columns(), g.Start())
			fmt.Fprintln(w, g.Render())

			return nil
		},
	}
}
