package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dataheck/tickload/pkg/tickload"
)

// Coordinator runs the full ingestion pipeline: it starts the worker pool,
// drives the scanner in the calling goroutine, closes the work channel when
// traversal finishes, and joins every worker before returning.
type Coordinator struct {
	factory tickload.ConnFactory
	logger  tickload.Logger
}

// New creates a pipeline coordinator.
// Panics if factory or logger is nil.
func New(factory tickload.ConnFactory, logger tickload.Logger) *Coordinator {
	if factory == nil {
		panic("factory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Coordinator{factory: factory, logger: logger}
}

// Run executes one load. Completion means the scanner finished traversal and
// every worker drained; the report is valid even when err is non-nil, closing
// over whatever finished before the failure.
//
// Fatal conditions (inaccessible root, connection-factory failure at worker
// startup) cancel the shared context, which stops the scanner and lets the
// remaining workers wind down before Run returns — workers are always joined,
// even on fatal paths.
func (c *Coordinator) Run(ctx context.Context, config tickload.LoadConfig) (tickload.LoadReport, error) {
	report := tickload.LoadReport{RunID: uuid.New()}

	if err := config.Validate(); err != nil {
		return report, err
	}

	info, err := os.Stat(config.RootDir)
	if err != nil {
		return report, fmt.Errorf("%w: %v", tickload.ErrRootNotFound, err)
	}
	if !info.IsDir() {
		return report, fmt.Errorf("%w: %s is not a directory", tickload.ErrRootNotFound, config.RootDir)
	}

	c.logger.Info("run %s: loading %s with %d workers", report.RunID, config.RootDir, config.Workers)
	start := time.Now()

	items := make(chan tickload.WorkItem, tickload.WorkQueueDepth)
	group, groupCtx := errgroup.WithContext(ctx)

	workers := make([]*worker, config.Workers)
	for i := range workers {
		w := &worker{
			id:      i,
			items:   items,
			factory: c.factory,
			logger:  c.logger,
		}
		workers[i] = w
		group.Go(func() error {
			return w.run(groupCtx)
		})
	}

	// The scanner runs here, in the caller's goroutine. Closing the channel
	// is the end-of-stream signal that lets workers distinguish "done
	// forever" from "temporarily empty".
	scanner := NewScanner(c.logger)
	candidates, scanErr := scanner.Scan(groupCtx, config.RootDir, items)
	close(items)

	err = group.Wait()
	if err == nil && scanErr != nil {
		// The scanner only fails on context cancellation; if no worker
		// reported the cause, surface the cancellation itself.
		err = scanErr
	}

	report.Candidates = candidates
	for _, w := range workers {
		report.Loaded += w.stats.loaded
		report.Skipped += w.stats.skipped
		report.Abandoned += w.stats.abandoned
		report.Rows += w.stats.rows
		report.Duplicates += w.stats.duplicates
	}
	report.Elapsed = time.Since(start)

	c.logger.Info("run %s: %d files (%d loaded, %d skipped, %d abandoned), %d rows, %d duplicates in %s",
		report.RunID, report.Candidates, report.Loaded, report.Skipped, report.Abandoned,
		report.Rows, report.Duplicates, report.Elapsed.Round(time.Millisecond))

	return report, err
}
