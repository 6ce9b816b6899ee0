// Package loader implements the first pipeline stage: fabricating a synthetic
// dataset and writing it as the pipeline's first artifact. The input path is
// recorded as a label only and is never read.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"datapipe/internal/config"
	"datapipe/internal/document"
	"datapipe/internal/logging"
	"datapipe/internal/services"
	"datapipe/internal/stage"
)

// StageName identifies this stage in logs and the history ledger.
const StageName = "load"

// Fabricated source metadata carried from the original pipeline fixtures.
const (
	fixtureFileSize = "2.5MB"
	fixtureFormat   = "JSON"
	fixtureEncoding = "UTF-8"
)

// Result is the LOAD_RESULT payload.
type Result struct {
	Status        string `json:"status"`
	RecordsLoaded int    `json:"records_loaded"`
	OutputFile    string `json:"output_file"`
	FileSize      string `json:"file_size"`
}

// Loader fabricates a LoadedDataset.
type Loader struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New constructs the load stage handler.
func New(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "loader"),
		now:    time.Now,
	}
}

// Execute writes a LoadedDataset with cfg.Pipeline.RecordCount synthetic
// records to the output path. The reported records count always matches the
// generated record length.
func (l *Loader) Execute(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
	logger := logging.WithContext(ctx, l.logger)
	fmt.Fprintf(req.Progress, "Loading data from: %s\n", req.InputPath)

	count := l.cfg.Pipeline.RecordCount
	records := make([]document.Record, 0, count)
	for i := 1; i <= count; i++ {
		records = append(records, document.Record{
			ID:        i,
			Value:     fmt.Sprintf("record_%d", i),
			Timestamp: l.timestamp(),
		})
	}

	dataset := document.LoadedDataset{
		SourceFile:   req.InputPath,
		LoadedAt:     l.timestamp(),
		RecordsCount: len(records),
		Data:         records,
		Metadata: document.DatasetMetadata{
			FileSize: fixtureFileSize,
			Format:   fixtureFormat,
			Encoding: fixtureEncoding,
		},
	}

	if err := document.Write(req.OutputPath, dataset); err != nil {
		return nil, services.Wrap(services.ErrOutput, StageName, "write dataset", "", err)
	}
	logger.Info("dataset written",
		logging.Int("records", len(records)),
		logging.String("output_file", req.OutputPath),
	)

	fmt.Fprintf(req.Progress, "Data loaded successfully. Records: %d\n", dataset.RecordsCount)
	fmt.Fprintf(req.Progress, "Output saved to: %s\n", req.OutputPath)

	return &stage.Outcome{
		Records: int64(len(records)),
		Payload: Result{
			Status:        "success",
			RecordsLoaded: dataset.RecordsCount,
			OutputFile:    req.OutputPath,
			FileSize:      dataset.Metadata.FileSize,
		},
	}, nil
}

func (l *Loader) timestamp() string {
	return l.now().UTC().Format(time.RFC3339Nano)
}
