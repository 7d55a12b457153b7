// Package source discovers and parses JSONL expense import files.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tapsave/tapsave/internal/model"
)

// importNamespace scopes the deterministic IDs given to imported expenses.
var importNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tapsave:import"))

// ParseResult holds the output of parsing a single import file.
type ParseResult struct {
	File        DiscoveredFile
	Expenses    []model.Expense
	ParseErrors int
	Err         error
}

// ParseFile reads an import file, one JSON object per line.
//
// Blank lines are skipped. Lines that are not valid JSON, or whose amount is
// missing or negative, or whose date cannot be parsed, are counted in
// ParseErrors and skipped. Each expense gets an ID derived from the file path
// and line number, so importing the same file twice yields the same IDs.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{File: df, Err: err}
	}
	defer func() { _ = f.Close() }()

	result := ParseResult{File: df}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			result.ParseErrors++
			continue
		}
		e.ID = ExpenseID(df.Path, lineNo)
		result.Expenses = append(result.Expenses, e)
	}

	if err := scanner.Err(); err != nil {
		result.Err = fmt.Errorf("reading %s: %w", df.Path, err)
	}
	return result
}

// ExpenseID returns the deterministic ID of the expense on a given line of path.
func ExpenseID(path string, line int) string {
	return uuid.NewSHA1(importNamespace, []byte(path+":"+strconv.Itoa(line))).String()
}

func parseLine(line []byte) (model.Expense, error) {
	var entry RawEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		return model.Expense{}, err
	}

	amount, err := parseRawAmount(entry.Amount)
	if err != nil {
		return model.Expense{}, err
	}
	date, err := ParseDate(entry.Date)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		Amount:   amount,
		Date:     date,
		Notes:    entry.Notes,
		Category: model.Labeled(entry.Category),
	}, nil
}

func parseRawAmount(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, model.ErrInvalidAmount
	}
	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, model.ErrInvalidAmount
		}
	} else {
		s = string(raw)
	}
	return model.ParseAmount(s)
}

// dateLayouts are tried in order; date-only values are read in local time.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an RFC 3339 timestamp or a local YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
