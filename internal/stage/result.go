package stage

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteResult emits the single machine-parseable hand-off line an
// orchestrator scans for: `TAG_RESULT: <compact-json>`. It must be the final
// line a successful stage prints on stdout.
func WriteResult(w io.Writer, tag string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode result payload: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s_RESULT: %s\n", tag, data)
	return err
}

// WriteError emits the stdout failure line, `Error <context>: <message>`.
// No result line follows it.
func WriteError(w io.Writer, errorContext, message string) {
	fmt.Fprintf(w, "Error %s: %s\n", errorContext, message)
}
