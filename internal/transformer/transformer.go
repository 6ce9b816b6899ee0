// Package transformer implements the second pipeline stage: parsing the
// loader's artifact, applying the configured per-record transformation, and
// writing the ProcessedDataset artifact.
package transformer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"datapipe/internal/config"
	"datapipe/internal/document"
	"datapipe/internal/logging"
	"datapipe/internal/services"
	"datapipe/internal/stage"
)

// StageName identifies this stage in logs and the history ledger.
const StageName = "process"

// Simulated resource figures carried from the original pipeline fixtures.
const (
	fixtureProcessingTimeMS = 150
	fixtureMemoryUsedMB     = 25.5
)

// transformations lists the declared transformation tags, in application order.
var transformations = []string{"uppercase_conversion", "timestamp_normalization"}

// Result is the PROCESS_RESULT payload.
type Result struct {
	Status                 string   `json:"status"`
	RecordsProcessed       int      `json:"records_processed"`
	OutputFile             string   `json:"output_file"`
	ProcessingTimeMS       int      `json:"processing_time_ms"`
	TransformationsApplied []string `json:"transformations_applied"`
}

// Transformer derives a ProcessedDataset from a LoadedDataset.
type Transformer struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New constructs the process stage handler.
func New(cfg *config.Config, logger *slog.Logger) *Transformer {
	return &Transformer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "transformer"),
		now:    time.Now,
	}
}

// Execute parses the input artifact, uppercases every record value, and
// writes the processed artifact. The transformation is deterministic given a
// record's value; the injected timestamps are not.
func (t *Transformer) Execute(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
	logger := logging.WithContext(ctx, t.logger)
	fmt.Fprintf(req.Progress, "Processing data from: %s\n", req.InputPath)

	dataset, err := document.ReadLoadedDataset(req.InputPath)
	if err != nil {
		marker := services.ErrInput
		if errors.Is(err, document.ErrMalformed) || errors.Is(err, document.ErrShape) {
			marker = services.ErrFormat
		}
		return nil, services.Wrap(marker, StageName, "read input dataset", "", err)
	}

	processed := make([]document.ProcessedRecord, 0, len(dataset.Data))
	for _, record := range dataset.Data {
		processed = append(processed, document.ProcessedRecord{
			ID:                    record.ID,
			ProcessedValue:        strings.ToUpper(record.Value),
			ProcessedTimestamp:    t.timestamp(),
			OriginalTimestamp:     record.Timestamp,
			TransformationApplied: t.cfg.Pipeline.Transformation,
		})
	}

	output := document.ProcessedDataset{
		SourceFile:            req.InputPath,
		ProcessedAt:           t.timestamp(),
		OriginalRecordsCount:  dataset.RecordsCount,
		ProcessedRecordsCount: len(processed),
		Transformations:       transformations,
		Data:                  processed,
		Metadata: document.ProcessingMetadata{
			ProcessingTimeMS:     fixtureProcessingTimeMS,
			MemoryUsedMB:         fixtureMemoryUsedMB,
			TransformationsCount: len(transformations),
		},
	}

	if err := document.Write(req.OutputPath, output); err != nil {
		return nil, services.Wrap(services.ErrOutput, StageName, "write processed dataset", "", err)
	}
	logger.Info("processed dataset written",
		logging.Int("records", len(processed)),
		logging.String("output_file", req.OutputPath),
	)

	fmt.Fprintf(req.Progress, "Data processed successfully. Records: %d\n", len(processed))
	fmt.Fprintf(req.Progress, "Output saved to: %s\n", req.OutputPath)

	return &stage.Outcome{
		Records: int64(len(processed)),
		Payload: Result{
			Status:                 "success",
			RecordsProcessed:       len(processed),
			OutputFile:             req.OutputPath,
			ProcessingTimeMS:       output.Metadata.ProcessingTimeMS,
			TransformationsApplied: output.Transformations,
		},
	}, nil
}

func (t *Transformer) timestamp() string {
	return t.now().UTC().Format(time.RFC3339Nano)
}
