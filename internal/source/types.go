package source

import (
	"encoding/json"
	"time"
)

// RawEntry is a single line of an expense import file.
// Amount accepts either a JSON number or a numeric string.
type RawEntry struct {
	Amount   json.RawMessage `json:"amount"`
	Date     string          `json:"date"`
	Category string          `json:"category,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// DiscoveredFile is an import file found on disk.
type DiscoveredFile struct {
	Path    string
	Size    int64
	ModTime time.Time
}
