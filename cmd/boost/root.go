package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boost",
		Short: "AdaBoost ensembles of weak classifiers",
		Long: `Boost trains weighted majority ensembles of weak classifiers
on labeled csv datasets and reports how well they do.`,
		SilenceUsage: true,
	}

	debug := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	cmd.AddCommand(newTrainCommand())
	cmd.AddCommand(newServeCommand())
	return cmd
}
