package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"datapipe/internal/analyzer"
	"datapipe/internal/config"
	"datapipe/internal/loader"
	"datapipe/internal/stage"
	"datapipe/internal/transformer"
)

type stageSpec struct {
	use          string
	short        string
	name         string
	resultTag    string
	errorContext string
	build        func(cfg *config.Config, logger *slog.Logger) stage.Handler
}

func stageSpecs() []stageSpec {
	return []stageSpec{
		{
			use:          "load <input_file> <output_file>",
			short:        "Fabricate a dataset and write the first pipeline artifact",
			name:         loader.StageName,
			resultTag:    "LOAD",
			errorContext: "loading data",
			build: func(cfg *config.Config, logger *slog.Logger) stage.Handler {
				return loader.New(cfg, logger)
			},
		},
		{
			use:          "process <input_file> <output_file>",
			short:        "Transform a loaded dataset into the processed artifact",
			name:         transformer.StageName,
			resultTag:    "PROCESS",
			errorContext: "processing data",
			build: func(cfg *config.Config, logger *slog.Logger) stage.Handler {
				return transformer.New(cfg, logger)
			},
		},
		{
			use:          "analyze <input_file> <output_file>",
			short:        "Size a prior artifact and write the analysis report",
			name:         analyzer.StageName,
			resultTag:    "ANALYZE",
			errorContext: "analyzing results",
			build: func(cfg *config.Config, logger *slog.Logger) stage.Handler {
				return analyzer.New(logger)
			},
		},
	}
}

func newStageCommand(ctx *commandContext, spec stageSpec) *cobra.Command {
	return &cobra.Command{
		Use:           spec.use,
		Short:         spec.short,
		SilenceUsage:  true,
		SilenceErrors: true,
		// The orchestrator contract: any arity other than two positional
		// arguments prints a usage line to stdout and exits 1, never 2.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintf(cmd.OutOrStdout(), "Usage: datapipe %s\n", spec.use)
				return errSilent
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				stage.WriteError(stdout, spec.errorContext, err.Error())
				return errSilent
			}

			logger := ctx.stageLogger(cfg)
			store := ctx.openHistory(cfg, logger)
			if store != nil {
				defer store.Close()
			}

			err = stage.Run(cmd.Context(), stage.Options{
				Logger:       logger,
				History:      store,
				Handler:      spec.build(cfg, logger),
				StageName:    spec.name,
				ResultTag:    spec.resultTag,
				ErrorContext: spec.errorContext,
				InputPath:    args[0],
				OutputPath:   args[1],
				Stdout:       stdout,
			})
			if err != nil {
				// stage.Run already printed the error line.
				return errSilent
			}
			return nil
		},
	}
}
