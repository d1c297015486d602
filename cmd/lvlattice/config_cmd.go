package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlattice/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
