package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errSilent marks failures that were already reported on the stage stdout
// protocol; main exits 1 without printing anything further.
var errSilent = errors.New("already reported")

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "datapipe",
		Short:         "Three-stage data pipeline CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	for _, spec := range stageSpecs() {
		rootCmd.AddCommand(newStageCommand(ctx, spec))
	}
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
