package stage

import (
	"context"
	"io"
)

// Request carries the file hand-off arguments of a single stage invocation.
// Progress receives the free-form human-readable lines a stage prints before
// its result line; it is never nil inside Run.
type Request struct {
	InputPath  string
	OutputPath string
	Progress   io.Writer
}

// Outcome is the typed result of a successful stage execution. Payload is
// marshaled verbatim into the machine-parseable result line.
type Outcome struct {
	Records int64
	Payload any
}

// Handler is the contract each pipeline stage implements.
type Handler interface {
	Execute(ctx context.Context, req Request) (*Outcome, error)
}
