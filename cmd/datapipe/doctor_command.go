package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datapipe/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the local environment for problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := colorizeOutput()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				printCheck(out, preflight.Result{Name: "Configuration", Detail: err.Error()}, colorize)
				return errors.New("doctor found problems")
			}
			printCheck(out, preflight.Result{Name: "Configuration", Passed: true, Detail: "loaded"}, colorize)

			results := []preflight.Result{
				preflight.CheckStateDir(cfg.Paths.StateDir),
				preflight.CheckFreeSpace(cfg.Paths.StateDir),
				preflight.CheckHistory(cfg.History.Enabled, cfg.HistoryPath()),
			}

			failed := false
			for _, result := range results {
				printCheck(out, result, colorize)
				if !result.Passed {
					failed = true
				}
			}
			if failed {
				return errors.New("doctor found problems")
			}
			return nil
		},
	}
}

func printCheck(w io.Writer, result preflight.Result, colorize bool) {
	label := "OK"
	color := ansiGreen
	switch {
	case !result.Passed:
		label = "ERROR"
		color = ansiRed
	case result.Warning:
		label = "WARN"
		color = ""
	}

	status := fmt.Sprintf("[%s]", label)
	if result.Detail != "" {
		status = fmt.Sprintf("[%s] %s", label, result.Detail)
	}
	line := fmt.Sprintf("  %-20s %s", result.Name+":", status)
	if colorize && color != "" {
		line = color + line + ansiReset
	}
	fmt.Fprintln(w, line)
}
