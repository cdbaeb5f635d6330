package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [maze-file]...",
		Short: "Check that maze files parse and have a valid start",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				if _, err := maze.ParseFile(path); err != nil {
					a.logger.Warn("invalid maze", zap.String("file", path), zap.Error(err))
					fmt.Fprintf(w, "FAIL %v\n", err)
					failed++
					continue
				}
				fmt.Fprintf(w, "ok   %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d maze files invalid", failed, len(args))
			}

			return nil
		},
	}
}
