package stage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"datapipe/internal/history"
	"datapipe/internal/logging"
	"datapipe/internal/services"
	"datapipe/internal/stage"
)

type handlerFunc func(ctx context.Context, req stage.Request) (*stage.Outcome, error)

func (f handlerFunc) Execute(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
	return f(ctx, req)
}

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunEmitsResultLineLast(t *testing.T) {
	var out bytes.Buffer
	store := openStore(t)

	handler := handlerFunc(func(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
		if stageName, ok := services.StageFromContext(ctx); !ok || stageName != "load" {
			t.Fatalf("expected stage on context, got %q", stageName)
		}
		if _, ok := services.RunIDFromContext(ctx); !ok {
			t.Fatal("expected run id on context")
		}
		req.Progress.Write([]byte("Loading data from: " + req.InputPath + "\n"))
		return &stage.Outcome{
			Records: 100,
			Payload: map[string]any{"status": "success", "records_loaded": 100},
		}, nil
	})

	err := stage.Run(context.Background(), stage.Options{
		Logger:       logging.NewNop(),
		History:      store,
		Handler:      handler,
		StageName:    "load",
		ResultTag:    "LOAD",
		ErrorContext: "loading data",
		InputPath:    "in.txt",
		OutputPath:   "out.json",
		Stdout:       &out,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "LOAD_RESULT: ") {
		t.Fatalf("expected final result line, got %q", last)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimPrefix(last, "LOAD_RESULT: ")), &payload); err != nil {
		t.Fatalf("result line is not JSON: %v", err)
	}
	if payload["status"] != "success" {
		t.Fatalf("unexpected payload: %v", payload)
	}

	records, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].Status != history.StatusSuccess || records[0].Records != 100 {
		t.Fatalf("unexpected ledger contents: %+v", records)
	}
}

func TestRunFailurePrintsErrorLineAndRecords(t *testing.T) {
	var out bytes.Buffer
	store := openStore(t)

	stageErr := services.Wrap(services.ErrFormat, "process", "parse input", "malformed JSON", errors.New("unexpected token"))
	handler := handlerFunc(func(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
		return nil, stageErr
	})

	err := stage.Run(context.Background(), stage.Options{
		Logger:       logging.NewNop(),
		History:      store,
		Handler:      handler,
		StageName:    "process",
		ResultTag:    "PROCESS",
		ErrorContext: "processing data",
		Stdout:       &out,
	})
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected stage error returned, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Error processing data: process: parse input: malformed JSON") {
		t.Fatalf("expected error line, got %q", output)
	}
	if strings.Contains(output, "_RESULT:") {
		t.Fatalf("failure must not emit a result line: %q", output)
	}

	records, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].Status != history.StatusFailed {
		t.Fatalf("unexpected ledger contents: %+v", records)
	}
	if records[0].ErrorMessage == "" {
		t.Fatal("expected failure message in ledger")
	}
}

func TestRunWithoutHistoryStore(t *testing.T) {
	var out bytes.Buffer
	handler := handlerFunc(func(ctx context.Context, req stage.Request) (*stage.Outcome, error) {
		return &stage.Outcome{Payload: map[string]string{"status": "success"}}, nil
	})

	err := stage.Run(context.Background(), stage.Options{
		Logger:       logging.NewNop(),
		Handler:      handler,
		StageName:    "analyze",
		ResultTag:    "ANALYZE",
		ErrorContext: "analyzing results",
		Stdout:       &out,
	})
	if err != nil {
		t.Fatalf("Run without ledger: %v", err)
	}
	if !strings.Contains(out.String(), "ANALYZE_RESULT: ") {
		t.Fatalf("expected result line, got %q", out.String())
	}
}

func TestRunRequiresHandler(t *testing.T) {
	if err := stage.Run(context.Background(), stage.Options{StageName: "load"}); err == nil {
		t.Fatal("expected error when handler missing")
	}
}
