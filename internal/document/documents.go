package document

// Record is one synthetic entry fabricated by the load stage.
type Record struct {
	ID        int    `json:"id"`
	Value     string `json:"value"`
	Timestamp string `json:"timestamp"`
}

// DatasetMetadata describes the fabricated source of a LoadedDataset.
type DatasetMetadata struct {
	FileSize string `json:"file_size"`
	Format   string `json:"format"`
	Encoding string `json:"encoding"`
}

// LoadedDataset is the artifact the load stage hands to the process stage.
type LoadedDataset struct {
	SourceFile   string          `json:"source_file"`
	LoadedAt     string          `json:"loaded_at"`
	RecordsCount int             `json:"records_count"`
	Data         []Record        `json:"data"`
	Metadata     DatasetMetadata `json:"metadata"`
}

// ProcessedRecord is the transformed counterpart of a Record.
type ProcessedRecord struct {
	ID                    int    `json:"id"`
	ProcessedValue        string `json:"processed_value"`
	ProcessedTimestamp    string `json:"processed_timestamp"`
	OriginalTimestamp     string `json:"original_timestamp"`
	TransformationApplied string `json:"transformation_applied"`
}

// ProcessingMetadata carries the simulated resource figures of a process run.
type ProcessingMetadata struct {
	ProcessingTimeMS     int     `json:"processing_time_ms"`
	MemoryUsedMB         float64 `json:"memory_used_mb"`
	TransformationsCount int     `json:"transformations_count"`
}

// ProcessedDataset is the artifact the process stage hands to the analyze stage.
type ProcessedDataset struct {
	SourceFile            string             `json:"source_file"`
	ProcessedAt           string             `json:"processed_at"`
	OriginalRecordsCount  int                `json:"original_records_count"`
	ProcessedRecordsCount int                `json:"processed_records_count"`
	Transformations       []string           `json:"transformations"`
	Data                  []ProcessedRecord  `json:"data"`
	Metadata              ProcessingMetadata `json:"metadata"`
}

// AnalysisMetrics holds the simulated quality and performance scores.
type AnalysisMetrics struct {
	ProcessingEfficiency      float64 `json:"processing_efficiency"`
	DataQualityScore          float64 `json:"data_quality_score"`
	TransformationSuccessRate float64 `json:"transformation_success_rate"`
	PerformanceScore          float64 `json:"performance_score"`
}

// QualityChecks holds the simulated verdicts of the analyze stage.
type QualityChecks struct {
	DataIntegrity     string `json:"data_integrity"`
	FormatValidation  string `json:"format_validation"`
	CompletenessCheck string `json:"completeness_check"`
	ConsistencyCheck  string `json:"consistency_check"`
}

// AnalysisSummary is the fixed pipeline-wide rollup of an AnalysisReport.
type AnalysisSummary struct {
	TotalTasksCompleted int    `json:"total_tasks_completed"`
	SuccessfulTasks     int    `json:"successful_tasks"`
	FailedTasks         int    `json:"failed_tasks"`
	OverallStatus       string `json:"overall_status"`
	ProcessingTimeTotal string `json:"processing_time_total"`
	DataVolumeProcessed string `json:"data_volume_processed"`
}

// AnalysisReport is the final pipeline artifact.
type AnalysisReport struct {
	AnalysisTimestamp string          `json:"analysis_timestamp"`
	ReportFile        string          `json:"report_file"`
	ReportSizeBytes   int64           `json:"report_size_bytes"`
	ReportSizeKB      float64         `json:"report_size_kb"`
	AnalysisMetrics   AnalysisMetrics `json:"analysis_metrics"`
	Recommendations   []string        `json:"recommendations"`
	QualityChecks     QualityChecks   `json:"quality_checks"`
	Summary           AnalysisSummary `json:"summary"`
}
