package pipeline

import (
	"context"
	"fmt"

	"github.com/tapsave/tapsave/internal/logger"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/source"
	"github.com/tapsave/tapsave/internal/store"
)

// ImportStore is the part of the store the importer writes to.
type ImportStore interface {
	GetTrackedImports() (map[string]store.FileInfo, error)
	SaveImported(path string, expenses []model.Expense, mtimeNs, sizeBytes int64) error
}

// ImportResult extends LoadResult with tracker metadata.
type ImportResult struct {
	LoadResult
	Unchanged int
	Imported  int
}

// ImportWithTracker discovers import files, skips those whose mtime and size
// match the store's tracker, parses the rest and saves them. A changed file
// replaces the expenses it produced last time.
func ImportWithTracker(ctx context.Context, paths []string, st ImportStore, progressFn ProgressFunc) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	files, err := source.Discover(paths)
	if err != nil {
		return nil, fmt.Errorf("discovering import files: %w", err)
	}

	result := &ImportResult{LoadResult: LoadResult{TotalFiles: len(files)}}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := st.GetTrackedImports()
	if err != nil {
		return nil, fmt.Errorf("reading import tracker: %w", err)
	}

	// Diff: partition into changed and unchanged
	var toParse []source.DiscoveredFile
	for _, f := range files {
		prev, ok := tracked[f.Path]
		if ok && prev.MtimeNs == f.ModTime.UnixNano() && prev.SizeBytes == f.Size {
			log.Debug().Str("file", f.Path).Msg("unchanged since last import")
			result.Unchanged++
			continue
		}
		toParse = append(toParse, f)
	}

	if progressFn != nil && result.Unchanged > 0 {
		progressFn(result.Unchanged, result.TotalFiles)
	}
	if len(toParse) == 0 {
		return result, nil
	}

	results, err := parseAll(ctx, toParse, func(n int) {
		if progressFn != nil {
			progressFn(n+result.Unchanged, result.TotalFiles)
		}
	})
	if err != nil {
		return nil, err
	}

	// Only this goroutine writes to the store.
	for _, pr := range results {
		if pr.Err != nil {
			log.Warn().Err(pr.Err).Str("file", pr.File.Path).Msg("skipping unreadable file")
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.ParseErrors += pr.ParseErrors
		if pr.ParseErrors > 0 {
			log.Warn().Int("lines", pr.ParseErrors).Str("file", pr.File.Path).Msg("skipped malformed lines")
		}

		f := pr.File
		if err := st.SaveImported(f.Path, pr.Expenses, f.ModTime.UnixNano(), f.Size); err != nil {
			return nil, fmt.Errorf("saving %s: %w", f.Path, err)
		}
		result.Imported += len(pr.Expenses)
		result.Expenses = append(result.Expenses, pr.Expenses...)
		log.Debug().Int("expenses", len(pr.Expenses)).Str("file", f.Path).Msg("imported")
	}

	return result, nil
}
