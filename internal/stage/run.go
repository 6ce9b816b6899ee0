package stage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"datapipe/internal/history"
	"datapipe/internal/logging"
	"datapipe/internal/services"
)

// Options controls one-shot stage execution.
type Options struct {
	Logger       *slog.Logger
	History      *history.Store
	Handler      Handler
	StageName    string
	ResultTag    string
	ErrorContext string
	InputPath    string
	OutputPath   string
	Stdout       io.Writer
}

// Run executes a stage end to end: it stamps a run ID, logs lifecycle events,
// records the invocation in the history ledger, and emits the stdout protocol
// (result line on success, error line on failure). The returned error is the
// stage error; callers map any non-nil error to exit code 1 without printing
// it again.
func Run(ctx context.Context, opts Options) error {
	if opts.Handler == nil {
		return fmt.Errorf("stage handler unavailable: %s", opts.StageName)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	runID := uuid.NewString()
	stageCtx := services.WithStage(ctx, opts.StageName)
	stageCtx = services.WithRunID(stageCtx, runID)
	stageLogger := logging.WithContext(stageCtx, opts.Logger)

	stageLogger.Info(
		"stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String("input_file", opts.InputPath),
		logging.String("output_file", opts.OutputPath),
	)

	started := time.Now()
	outcome, err := opts.Handler.Execute(stageCtx, Request{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Progress:   stdout,
	})
	elapsed := time.Since(started)

	if err != nil {
		details := services.Details(err)
		WriteError(stdout, opts.ErrorContext, details.Message)
		stageLogger.Error(
			"stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.String("error_kind", details.Kind),
			logging.Duration("elapsed", elapsed),
			logging.Error(err),
		)
		recordRun(stageCtx, stageLogger, opts, history.Record{
			RunID:        runID,
			Stage:        opts.StageName,
			Status:       history.StatusFailed,
			InputPath:    opts.InputPath,
			OutputPath:   opts.OutputPath,
			Duration:     elapsed,
			ErrorMessage: details.Message,
		})
		return err
	}

	records := int64(0)
	if outcome != nil {
		records = outcome.Records
	}
	recordRun(stageCtx, stageLogger, opts, history.Record{
		RunID:      runID,
		Stage:      opts.StageName,
		Status:     history.StatusSuccess,
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Records:    records,
		Duration:   elapsed,
	})

	if outcome != nil && outcome.Payload != nil {
		if err := WriteResult(stdout, opts.ResultTag, outcome.Payload); err != nil {
			return services.Wrap(services.ErrInternal, opts.StageName, "emit result line", "", err)
		}
	}

	stageLogger.Info(
		"stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Int64("records", records),
		logging.Duration("elapsed", elapsed),
	)
	return nil
}

// recordRun appends to the ledger on a best-effort basis: the ledger is
// observability state, so its failures never change stage outcome.
func recordRun(ctx context.Context, logger *slog.Logger, opts Options, rec history.Record) {
	if opts.History == nil {
		return
	}
	if err := opts.History.Append(ctx, rec); err != nil {
		logger.Warn("failed to record stage run", logging.Error(err))
	}
}
