package history

import "time"

// Status records how a stage invocation ended.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Record is one ledger row describing a single stage invocation.
type Record struct {
	ID           int64
	RunID        string
	Stage        string
	Status       Status
	InputPath    string
	OutputPath   string
	Records      int64
	Duration     time.Duration
	ErrorMessage string
	CreatedAt    time.Time
}
