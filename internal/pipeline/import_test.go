package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tapsave/tapsave/internal/store"
)

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_ParsesAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jsonl"),
		`{"amount":10,"date":"2024-06-01","category":"Comida"}`,
		`garbage`,
	)
	writeFile(t, filepath.Join(dir, "nested", "b.ndjson"),
		`{"amount":"2.50","date":"2024-06-02"}`,
	)

	var calls atomic.Int64
	result, err := Load(context.Background(), []string{dir}, func(current, total int) {
		calls.Add(1)
		if total != 2 {
			t.Errorf("progress total = %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.TotalFiles != 2 || result.ParsedFiles != 2 {
		t.Errorf("files = %d/%d, want 2/2", result.ParsedFiles, result.TotalFiles)
	}
	if result.ParseErrors != 1 {
		t.Errorf("ParseErrors = %d, want 1", result.ParseErrors)
	}
	if len(result.Expenses) != 2 {
		t.Errorf("len(Expenses) = %d, want 2", len(result.Expenses))
	}
	if calls.Load() != 2 {
		t.Errorf("progress calls = %d, want 2", calls.Load())
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jsonl"), `{"amount":1,"date":"2024-06-01"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, []string{dir}, nil); err == nil {
		t.Error("Load with cancelled context returned no error")
	}
}

func TestImportWithTracker_SkipsUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gastos.jsonl")
	writeFile(t, path,
		`{"amount":10,"date":"2024-06-01"}`,
		`{"amount":20,"date":"2024-06-02"}`,
	)

	st, err := store.Open(filepath.Join(dir, "tapsave.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()
	first, err := ImportWithTracker(ctx, []string{path}, st, nil)
	if err != nil {
		t.Fatalf("ImportWithTracker: %v", err)
	}
	if first.Imported != 2 || first.Unchanged != 0 {
		t.Errorf("first import = %+v, want 2 imported", first)
	}

	second, err := ImportWithTracker(ctx, []string{path}, st, nil)
	if err != nil {
		t.Fatalf("ImportWithTracker: %v", err)
	}
	if second.Imported != 0 || second.Unchanged != 1 {
		t.Errorf("second import = %+v, want file unchanged", second)
	}

	// Rewrite with one line and a new mtime; the old rows must be replaced.
	writeFile(t, path, `{"amount":5,"date":"2024-06-03"}`)
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	third, err := ImportWithTracker(ctx, []string{path}, st, nil)
	if err != nil {
		t.Fatalf("ImportWithTracker: %v", err)
	}
	if third.Imported != 1 {
		t.Errorf("third import Imported = %d, want 1", third.Imported)
	}
	if n, _ := st.ExpenseCount(); n != 1 {
		t.Errorf("ExpenseCount = %d, want 1", n)
	}
}

func TestImportWithTracker_OversizedAmountIsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gastos.jsonl")
	writeFile(t, path,
		`{"amount": 1e400, "date": "2024-06-01"}`,
		`{"amount": "2e17", "date": "2024-06-01"}`,
		`{"amount": 3, "date": "2024-06-01"}`,
	)

	st, err := store.Open(filepath.Join(dir, "tapsave.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close() }()

	result, err := ImportWithTracker(context.Background(), []string{path}, st, nil)
	if err != nil {
		t.Fatalf("ImportWithTracker: %v", err)
	}
	if result.ParseErrors != 2 {
		t.Errorf("ParseErrors = %d, want 2", result.ParseErrors)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if n, _ := st.ExpenseCount(); n != 1 {
		t.Errorf("ExpenseCount = %d, want 1", n)
	}
}

func TestLoad_ProgressIsSequential(t *testing.T) {
	dir := t.TempDir()
	const files = 40
	for i := range files {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("f%02d.jsonl", i)), `{"amount":1,"date":"2024-06-01"}`)
	}

	var seen []int
	if _, err := Load(context.Background(), []string{dir}, func(current, total int) {
		seen = append(seen, current)
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(seen) != files {
		t.Fatalf("progress calls = %d, want %d", len(seen), files)
	}
	for i, n := range seen {
		if n != i+1 {
			t.Fatalf("progress[%d] = %d, want %d", i, n, i+1)
		}
	}
}
