package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvlattice",
		Short: "Parallel lattice-fixpoint solver",
		Long: `lvlattice drives the fixpoint engine over generated graphs and
sequences, then compares the result with a sequential reference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")

	root.AddCommand(newRunCmd(), newConfigCmd())

	return root
}
