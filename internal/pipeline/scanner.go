package pipeline

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dataheck/tickload/pkg/tickload"
)

// Scanner walks a directory tree and publishes one WorkItem per CSV file.
// It is the single producer of the work channel and runs in the caller's
// goroutine.
type Scanner struct {
	logger tickload.Logger
}

// NewScanner creates a scanner that reports traversal problems to logger.
// Panics if logger is nil.
func NewScanner(logger tickload.Logger) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{logger: logger}
}

// Scan walks root and sends a WorkItem for every file whose lowercase
// extension is .csv. Directories are traversed but never emitted, and no
// ordering is guaranteed. Entries that fail during traversal (permission
// denied, broken symlink) are logged and skipped; traversal continues with
// their siblings.
//
// Returns the number of items published. Scan stops early only when ctx is
// cancelled, which happens when a worker hits a fatal error. The caller
// closes the channel after Scan returns.
func (s *Scanner) Scan(ctx context.Context, root string, items chan<- tickload.WorkItem) (int, error) {
	count := 0

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skip %s: traversal error: %v", path, err)
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		if strings.ToLower(filepath.Ext(entry.Name())) != ".csv" {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			s.logger.Warn("skip %s: cannot resolve absolute path: %v", path, err)
			return nil
		}

		item := tickload.WorkItem{Path: abs, Type: entry.Type()}
		select {
		case items <- item:
			count++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	return count, err
}
