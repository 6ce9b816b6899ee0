// Package analyzer implements the final pipeline stage: sizing a prior
// artifact and writing an AnalysisReport with simulated quality metrics. The
// input is treated as an opaque file; its content is never parsed.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"datapipe/internal/document"
	"datapipe/internal/fileutil"
	"datapipe/internal/logging"
	"datapipe/internal/services"
	"datapipe/internal/stage"
)

// StageName identifies this stage in logs and the history ledger.
const StageName = "analyze"

// Simulated analysis fixtures carried from the original pipeline.
var (
	fixtureMetrics = document.AnalysisMetrics{
		ProcessingEfficiency:      95.5,
		DataQualityScore:          98.2,
		TransformationSuccessRate: 100.0,
		PerformanceScore:          92.8,
	}
	fixtureRecommendations = []string{
		"Data processing completed successfully",
		"All transformations applied correctly",
		"Performance is within acceptable limits",
		"Consider implementing parallel processing for larger datasets",
	}
	fixtureQualityChecks = document.QualityChecks{
		DataIntegrity:     "PASSED",
		FormatValidation:  "PASSED",
		CompletenessCheck: "PASSED",
		ConsistencyCheck:  "PASSED",
	}
	fixtureSummary = document.AnalysisSummary{
		TotalTasksCompleted: 4,
		SuccessfulTasks:     4,
		FailedTasks:         0,
		OverallStatus:       "SUCCESS",
		ProcessingTimeTotal: "2.5 minutes",
		DataVolumeProcessed: "2.5MB",
	}
)

// Result is the ANALYZE_RESULT payload.
type Result struct {
	Status               string  `json:"status"`
	AnalysisFile         string  `json:"analysis_file"`
	OverallStatus        string  `json:"overall_status"`
	QualityScore         float64 `json:"quality_score"`
	RecommendationsCount int     `json:"recommendations_count"`
}

// Analyzer produces an AnalysisReport from an opaque prior artifact.
type Analyzer struct {
	logger *slog.Logger
	now    func() time.Time
}

// New constructs the analyze stage handler.
func New(logger *slog.Logger) *Analyzer {
	return &Analyzer{
		logger: logging.NewComponentLogger(logger, "analyzer"),
		now:    time.Now,
	}
}

// Execute stats the input file and writes the report. report_size_bytes is
// exactly the input's byte length, even when the input is empty or not JSON.
func (a *Analyzer) Execute(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
	logger := logging.WithContext(ctx, a.logger)
	fmt.Fprintf(req.Progress, "Analyzing results from: %s\n", req.InputPath)

	size, err := fileutil.Size(req.InputPath)
	if err != nil {
		return nil, services.Wrap(services.ErrInput, StageName, "stat input", "", err)
	}

	report := document.AnalysisReport{
		AnalysisTimestamp: a.now().UTC().Format(time.RFC3339Nano),
		ReportFile:        req.InputPath,
		ReportSizeBytes:   size,
		ReportSizeKB:      math.Round(float64(size)/1024*100) / 100,
		AnalysisMetrics:   fixtureMetrics,
		Recommendations:   fixtureRecommendations,
		QualityChecks:     fixtureQualityChecks,
		Summary:           fixtureSummary,
	}

	if err := document.Write(req.OutputPath, report); err != nil {
		return nil, services.Wrap(services.ErrOutput, StageName, "write analysis report", "", err)
	}
	logger.Info("analysis report written",
		logging.Int64("report_size_bytes", size),
		logging.String("output_file", req.OutputPath),
	)

	fmt.Fprintln(req.Progress, "Analysis completed successfully")
	fmt.Fprintf(req.Progress, "Output saved to: %s\n", req.OutputPath)
	fmt.Fprintf(req.Progress, "Overall Status: %s\n", report.Summary.OverallStatus)

	return &stage.Outcome{
		Records: 0,
		Payload: Result{
			Status:               "success",
			AnalysisFile:         req.OutputPath,
			OverallStatus:        report.Summary.OverallStatus,
			QualityScore:         report.AnalysisMetrics.DataQualityScore,
			RecommendationsCount: len(report.Recommendations),
		},
	}, nil
}
