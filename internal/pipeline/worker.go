package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dataheck/tickload/internal/ingest"
	"github.com/dataheck/tickload/internal/market"
	"github.com/dataheck/tickload/pkg/tickload"
)

// workerStats counts one worker's share of the run. Written only by the
// owning worker goroutine; the coordinator reads it after the pool is joined.
type workerStats struct {
	loaded     int
	skipped    int
	abandoned  int
	rows       int64
	duplicates int64
}

// worker consumes work items until the channel closes. It owns exactly one
// database connection and one prepared-statement set, created at startup and
// torn down when the worker drains; neither is ever visible outside the
// worker.
type worker struct {
	id      int
	items   <-chan tickload.WorkItem
	factory tickload.ConnFactory
	logger  tickload.Logger
	stats   workerStats
}

// run is the worker's main loop: receive an item, process it, repeat until
// end-of-stream. A connection-factory or statement-preparation failure at
// startup is fatal for the whole run; everything after that is contained.
func (w *worker) run(ctx context.Context) error {
	conn, err := w.factory.Connect(ctx)
	if err != nil {
		return fmt.Errorf("worker %d: %w", w.id, err)
	}
	defer conn.Close(context.Background())

	executor, err := ingest.NewExecutor(ctx, conn)
	if err != nil {
		return fmt.Errorf("worker %d: %w", w.id, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item, open := <-w.items:
			if !open {
				// Drained: the producer finished traversal and the
				// channel is empty for good.
				w.logger.Verbose("worker %d drained", w.id)
				return nil
			}
			w.process(ctx, executor, item)
		}
	}
}

// process ingests one candidate file. All failure modes here resolve to a
// skip or an abandon; neither escapes to the caller.
func (w *worker) process(ctx context.Context, executor *ingest.Executor, item tickload.WorkItem) {
	meta, err := market.ParseFileName(item.Path)
	if err != nil {
		w.stats.skipped++
		w.logger.Warn("skip %s: %v", item.Path, err)
		return
	}

	root := meta.Symbol
	var contract *string
	if info, ok := market.Decompose(meta.Symbol); ok {
		root = info.Root
		date := info.Date().Format("2006-01-02")
		contract = &date
	}

	rows, err := ingest.OpenRows(item.Path)
	if err != nil {
		w.stats.skipped++
		w.logger.Warn("skip %s: %v", item.Path, err)
		return
	}
	defer rows.Close()

	var inserted, duplicates int64
	for rowNum := 1; ; rowNum++ {
		record, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			w.abandon(item.Path, rowNum, inserted, err)
			return
		}

		bar, err := ingest.Transform(meta, root, contract, record)
		if err != nil {
			w.abandon(item.Path, rowNum, inserted, err)
			return
		}

		ok, err := executor.Insert(ctx, bar)
		if err != nil {
			w.abandon(item.Path, rowNum, inserted, err)
			return
		}
		if ok {
			inserted++
		} else {
			duplicates++
		}
	}

	w.stats.loaded++
	w.stats.rows += inserted
	w.stats.duplicates += duplicates
	w.logger.Info("loaded %s: %d rows (%d duplicates)", item.Path, inserted, duplicates)
}

// abandon records a mid-file failure: rows inserted so far stay in the
// table (re-running is safe thanks to insert idempotence), the rest of the
// file is dropped, and the worker moves on.
func (w *worker) abandon(path string, rowNum int, inserted int64, err error) {
	w.stats.abandoned++
	w.stats.rows += inserted
	w.logger.Warn("abandon %s at row %d (%d rows kept): %v", path, rowNum, inserted, err)
}
