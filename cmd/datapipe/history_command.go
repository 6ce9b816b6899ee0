package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"datapipe/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past stage runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list stage runs: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, historyRows(records))
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stage runs recorded")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(records, colorizeOutput()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit runs as JSON")

	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded stage run",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}
}

// historyRow is the JSON projection of a ledger record.
type historyRow struct {
	ID        int64  `json:"id"`
	RunID     string `json:"run_id"`
	Stage     string `json:"stage"`
	Status    string `json:"status"`
	Input     string `json:"input_path"`
	Output    string `json:"output_path"`
	Records   int64  `json:"records"`
	Duration  string `json:"duration"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"`
}

func historyRows(records []history.Record) []historyRow {
	rows := make([]historyRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, historyRow{
			ID:        rec.ID,
			RunID:     rec.RunID,
			Stage:     rec.Stage,
			Status:    string(rec.Status),
			Input:     rec.InputPath,
			Output:    rec.OutputPath,
			Records:   rec.Records,
			Duration:  rec.Duration.String(),
			Error:     rec.ErrorMessage,
			CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func renderHistoryTable(records []history.Record, colorize bool) string {
	headers := []string{"ID", "WHEN", "STAGE", "STATUS", "RECORDS", "DURATION", "OUTPUT"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		status := string(rec.Status)
		if colorize {
			status = colorStatus(rec.Status)
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			rec.Stage,
			status,
			strconv.FormatInt(rec.Records, 10),
			rec.Duration.String(),
			rec.OutputPath,
		})
	}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
	return renderTable(headers, rows, aligns)
}

func colorStatus(status history.Status) string {
	switch status {
	case history.StatusSuccess:
		return ansiGreen + string(status) + ansiReset
	case history.StatusFailed:
		return ansiRed + string(status) + ansiReset
	default:
		return string(status)
	}
}

func (c *commandContext) requireHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("history is disabled in the configuration")
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return nil, fmt.Errorf("open history ledger: %w", err)
	}
	return store, nil
}
