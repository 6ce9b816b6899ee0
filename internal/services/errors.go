package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUsage    = errors.New("usage error")
	ErrInput    = errors.New("input error")
	ErrOutput   = errors.New("output error")
	ErrFormat   = errors.New("format error")
	ErrInternal = errors.New("internal error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrInternal
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Detail carries the classified kind and human message of a stage error.
type Detail struct {
	Kind    string
	Message string
}

// Details classifies err against the sentinel markers and strips the marker
// prefix from the message so callers can print it directly.
func Details(err error) Detail {
	if err == nil {
		return Detail{}
	}
	kind := "internal"
	switch {
	case errors.Is(err, ErrUsage):
		kind = "usage"
	case errors.Is(err, ErrInput):
		kind = "input"
	case errors.Is(err, ErrOutput):
		kind = "output"
	case errors.Is(err, ErrFormat):
		kind = "format"
	}
	message := err.Error()
	for _, marker := range []error{ErrUsage, ErrInput, ErrOutput, ErrFormat, ErrInternal} {
		prefix := marker.Error() + ": "
		if strings.HasPrefix(message, prefix) {
			message = strings.TrimPrefix(message, prefix)
			break
		}
	}
	return Detail{Kind: kind, Message: message}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
