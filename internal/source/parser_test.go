package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeImport creates a temp JSONL file and returns a DiscoveredFile for it.
func writeImport(t *testing.T, lines ...string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{Path: path}
}

func TestParseFile_Valid(t *testing.T) {
	df := writeImport(t,
		`{"amount":12.5,"date":"2024-06-01","category":"Comida","notes":"almuerzo"}`,
		`{"amount":"3,20","date":"2024-06-02T10:00:00Z"}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.ParseErrors != 0 {
		t.Errorf("ParseErrors = %d, want 0", result.ParseErrors)
	}
	if len(result.Expenses) != 2 {
		t.Fatalf("len(Expenses) = %d, want 2", len(result.Expenses))
	}

	first := result.Expenses[0]
	if first.Amount != 12.5 {
		t.Errorf("Amount = %v, want 12.5", first.Amount)
	}
	if first.Category.Label() != "Comida" {
		t.Errorf("Category = %q, want Comida", first.Category.Label())
	}
	if first.Notes != "almuerzo" {
		t.Errorf("Notes = %q, want almuerzo", first.Notes)
	}
	if want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local); !first.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", first.Date, want)
	}

	second := result.Expenses[1]
	if second.Amount != 3.2 {
		t.Errorf("Amount = %v, want 3.2", second.Amount)
	}
	if !second.Category.IsUncategorized() {
		t.Errorf("Category = %v, want uncategorized", second.Category)
	}
}

func TestParseFile_CountsMalformedLines(t *testing.T) {
	df := writeImport(t,
		`{"amount":1,"date":"2024-06-01"}`,
		``,
		`not json`,
		`{"amount":-4,"date":"2024-06-01"}`,
		`{"date":"2024-06-01"}`,
		`{"amount":5,"date":"yesterday"}`,
		`{"amount":2,"date":"2024-06-03"}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.ParseErrors != 4 {
		t.Errorf("ParseErrors = %d, want 4", result.ParseErrors)
	}
	if len(result.Expenses) != 2 {
		t.Errorf("len(Expenses) = %d, want 2", len(result.Expenses))
	}
}

func TestParseFile_StableIDs(t *testing.T) {
	df := writeImport(t,
		`{"amount":1,"date":"2024-06-01"}`,
		`{"amount":2,"date":"2024-06-02"}`,
	)

	a := ParseFile(df)
	b := ParseFile(df)
	for i := range a.Expenses {
		if a.Expenses[i].ID != b.Expenses[i].ID {
			t.Errorf("expense %d ID changed between parses", i)
		}
	}
	if a.Expenses[0].ID == a.Expenses[1].ID {
		t.Error("distinct lines share an ID")
	}
	if a.Expenses[1].ID != ExpenseID(df.Path, 2) {
		t.Errorf("ID = %s, want ExpenseID(path, 2)", a.Expenses[1].ID)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	result := ParseFile(DiscoveredFile{Path: filepath.Join(t.TempDir(), "nope.jsonl")})
	if result.Err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jsonl", "b.ndjson", "c.txt", ".hidden/d.jsonl", "sub/e.jsonl"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Discover([]string{dir, filepath.Join(dir, "a.jsonl"), filepath.Join(dir, "c.txt")})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	var names []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f.Path)
		names = append(names, rel)
	}
	got := strings.Join(names, ",")
	want := strings.Join([]string{"a.jsonl", "b.ndjson", "c.txt", filepath.Join("sub", "e.jsonl")}, ",")
	if got != want {
		t.Errorf("Discover = %s, want %s", got, want)
	}

	if _, err := Discover([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("Discover on a missing path returned no error")
	}
}
