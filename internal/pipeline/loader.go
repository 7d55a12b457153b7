package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/tapsave/tapsave/internal/logger"
	"github.com/tapsave/tapsave/internal/model"
	"github.com/tapsave/tapsave/internal/source"
)

// LoadResult holds the output of parsing a set of import files.
type LoadResult struct {
	Expenses    []model.Expense
	TotalFiles  int
	ParsedFiles int
	ParseErrors int
	FileErrors  int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
// Calls are sequential and current increases by one each time.
type ProgressFunc func(current, total int)

// Load discovers and parses every import file under paths without touching the store.
// It uses a bounded worker pool for parallel parsing.
func Load(ctx context.Context, paths []string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.Discover(paths)
	if err != nil {
		return nil, fmt.Errorf("discovering import files: %w", err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	results, err := parseAll(ctx, files, func(n int) {
		if progressFn != nil {
			progressFn(n, len(files))
		}
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	for _, pr := range results {
		if pr.Err != nil {
			log.Warn().Err(pr.Err).Str("file", pr.File.Path).Msg("skipping unreadable file")
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.ParseErrors += pr.ParseErrors
		result.Expenses = append(result.Expenses, pr.Expenses...)
	}

	return result, nil
}

// parseAll parses files on GOMAXPROCS workers. Results are indexed like files.
// onDone receives the running count of finished files. It runs on the calling
// goroutine, so counts arrive in order and never concurrently.
func parseAll(ctx context.Context, files []source.DiscoveredFile, onDone func(n int)) ([]source.ParseResult, error) {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	done := make(chan struct{}, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				if ctx.Err() != nil {
					return
				}
				results[idx] = source.ParseFile(files[idx])
				done <- struct{}{}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	processed := 0
	for range done {
		processed++
		onDone(processed)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
