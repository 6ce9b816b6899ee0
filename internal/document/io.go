package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"datapipe/internal/fileutil"
)

// ErrMalformed indicates the input file was not a parseable JSON document.
var ErrMalformed = errors.New("malformed document")

// ErrShape indicates the input parsed as JSON but lacks required fields.
var ErrShape = errors.New("unexpected document shape")

// Write marshals v as 2-space-indented JSON and writes it to path, creating
// parent directories as needed. The write is a plain truncating write; a
// crash mid-write can leave a partial file for the next stage to reject.
func Write(path string, v any) error {
	if err := fileutil.EnsureParentDir(path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ReadLoadedDataset parses path into a LoadedDataset, failing fast when the
// file is not JSON or the record array is missing.
func ReadLoadedDataset(path string) (*LoadedDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dataset LoadedDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if dataset.Data == nil {
		return nil, fmt.Errorf("%w: %s: missing data array", ErrShape, path)
	}
	return &dataset, nil
}
