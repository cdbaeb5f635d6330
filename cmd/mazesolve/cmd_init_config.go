package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInitConfigCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the effective configuration to a YAML file",
		Long: `init-config writes the configuration mazesolve would run with (defaults,
then --config, then MAZESOLVE_* variables) to path, or to --config when no
path is given. An existing file is kept unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("init-config: no path given and --config not set")
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("init-config: %s already exists (use --force to overwrite)", path)
				}
			}
			if err := a.cfg.Save(path); err != nil {
				return err
			}
			a.logger.Info("configuration written", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
