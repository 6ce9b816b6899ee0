package transformer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"datapipe/internal/config"
	"datapipe/internal/document"
	"datapipe/internal/logging"
	"datapipe/internal/services"
	"datapipe/internal/stage"
	"datapipe/internal/transformer"
)

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func writeDataset(t *testing.T, path string, dataset document.LoadedDataset) {
	t.Helper()
	if err := document.Write(path, dataset); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
}

func TestExecuteUppercasesEveryRecord(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "loaded.json")
	output := filepath.Join(dir, "processed.json")

	writeDataset(t, input, document.LoadedDataset{
		SourceFile:   "label",
		LoadedAt:     "2026-01-02T03:04:05Z",
		RecordsCount: 3,
		Data: []document.Record{
			{ID: 1, Value: "record_1", Timestamp: "2026-01-02T03:04:05Z"},
			{ID: 2, Value: "mixed Case value", Timestamp: "2026-01-02T03:04:06Z"},
			{ID: 3, Value: "record_3", Timestamp: "2026-01-02T03:04:07Z"},
		},
	})

	tr := transformer.New(testConfig(), logging.NewNop())
	outcome, err := tr.Execute(context.Background(), stage.Request{
		InputPath:  input,
		OutputPath: output,
		Progress:   &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if outcome.Records != 3 {
		t.Fatalf("expected 3 records, got %d", outcome.Records)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var processed document.ProcessedDataset
	if err := json.Unmarshal(data, &processed); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}

	if processed.ProcessedRecordsCount != 3 || len(processed.Data) != 3 {
		t.Fatalf("unexpected counts: %+v", processed)
	}
	wantValues := []string{"RECORD_1", "MIXED CASE VALUE", "RECORD_3"}
	for i, rec := range processed.Data {
		if rec.ProcessedValue != wantValues[i] {
			t.Fatalf("record %d: got %q want %q", i, rec.ProcessedValue, wantValues[i])
		}
		if rec.ID != i+1 {
			t.Fatalf("record %d: id changed to %d", i, rec.ID)
		}
		if rec.TransformationApplied != "uppercase_conversion" {
			t.Fatalf("record %d: unexpected transformation %q", i, rec.TransformationApplied)
		}
	}
	if processed.OriginalRecordsCount != 3 {
		t.Fatalf("unexpected original count: %d", processed.OriginalRecordsCount)
	}
	if len(processed.Transformations) != 2 || processed.Metadata.TransformationsCount != 2 {
		t.Fatalf("unexpected transformations: %+v", processed)
	}

	result, ok := outcome.Payload.(transformer.Result)
	if !ok {
		t.Fatalf("unexpected payload type %T", outcome.Payload)
	}
	if result.RecordsProcessed != 3 || result.Status != "success" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.TransformationsApplied) != 2 {
		t.Fatalf("unexpected result transformations: %+v", result.TransformationsApplied)
	}
}

func TestExecuteEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "loaded.json")
	output := filepath.Join(dir, "processed.json")
	writeDataset(t, input, document.LoadedDataset{Data: []document.Record{}})

	tr := transformer.New(testConfig(), logging.NewNop())
	outcome, err := tr.Execute(context.Background(), stage.Request{
		InputPath:  input,
		OutputPath: output,
		Progress:   &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if outcome.Records != 0 {
		t.Fatalf("expected 0 records, got %d", outcome.Records)
	}
}

func TestExecuteMalformedInputIsFormatError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.json")
	output := filepath.Join(dir, "processed.json")
	if err := os.WriteFile(input, []byte("not json at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	tr := transformer.New(testConfig(), logging.NewNop())
	_, err := tr.Execute(context.Background(), stage.Request{
		InputPath:  input,
		OutputPath: output,
		Progress:   &bytes.Buffer{},
	})
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("failure must not create the output file: %v", statErr)
	}
}

func TestExecuteMissingInputIsInputError(t *testing.T) {
	dir := t.TempDir()
	tr := transformer.New(testConfig(), logging.NewNop())
	_, err := tr.Execute(context.Background(), stage.Request{
		InputPath:  filepath.Join(dir, "absent.json"),
		OutputPath: filepath.Join(dir, "processed.json"),
		Progress:   &bytes.Buffer{},
	})
	if !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}
