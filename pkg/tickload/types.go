package tickload

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
)

// Timeframe labels recognized in filenames. Any other value is a skip.
const (
	TimeframeDay    = "day"
	TimeframeMinute = "minute"
)

// LoadConfig contains all parameters needed for a bulk-load operation.
type LoadConfig struct {
	// RootDir is the directory tree to scan for CSV files
	RootDir string

	// ConnectionString is the PostgreSQL connection string (URI or key=value format)
	ConnectionString string

	// Workers is the number of concurrent ingestion workers.
	// Each worker owns one database connection for its entire lifetime.
	Workers int

	// Timeout is the global timeout for the entire run (0 = no timeout)
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.RootDir == "" {
		errs = append(errs, fmt.Errorf("RootDir is required: %w", ErrInvalidConfig))
	}

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("Workers must be at least 1, got %d: %w", c.Workers, ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// WorkItem is one unit of ingestion work: a single candidate file discovered
// by the scanner. Each item is consumed by exactly one worker.
// Immutable after creation.
type WorkItem struct {
	// Path is the absolute path of the candidate file
	Path string

	// Type is the filesystem entry type reported during traversal
	Type fs.FileMode
}

// FileMetadata holds the six ordered fields extracted from a filename of the
// form symbol-datasource-exchange-market-timeframe-field.csv (case-folded).
type FileMetadata struct {
	Symbol     string
	Datasource string
	Exchange   string
	Market     string
	Timeframe  string
	Field      string
}

// ContractInfo identifies the futures delivery month a price series belongs
// to, decomposed from a symbol such as "@VXJ20".
type ContractInfo struct {
	// Root is the ticker root including any leading "@", e.g. "@VX"
	Root string

	// Month is the delivery month decoded from the CME month-code letter
	Month time.Month

	// Year is the four-digit delivery year after pivot completion
	Year int
}

// Date returns the contract date: the first day of the delivery month.
func (c ContractInfo) Date() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Bar is one output row ready for insertion. Price and volume values are
// carried as raw text; the database casts them to numeric on insert.
type Bar struct {
	// Timestamp is "2006-01-02" for day bars or "2006-01-02 15:04:05" for minute bars
	Timestamp string

	// Symbol is the decomposed symbol root (the whole symbol for non-futures)
	Symbol string

	// Contract is the contract date ("2006-01-02") or nil for non-futures symbols
	Contract *string

	Open   string
	High   string
	Low    string
	Close  string
	Volume string

	// Barsize is the timeframe label, TimeframeDay or TimeframeMinute
	Barsize string
}

// LoadReport summarizes a completed run. After a run completes,
// Skipped + Abandoned + Loaded equals Candidates.
type LoadReport struct {
	// RunID uniquely identifies this load run in log output
	RunID uuid.UUID

	// Candidates is the number of files with a .csv extension under the root
	Candidates int

	// Loaded is the number of files fully processed
	Loaded int

	// Skipped is the number of files rejected before any row was read
	Skipped int

	// Abandoned is the number of files dropped mid-processing
	Abandoned int

	// Rows is the number of rows actually inserted
	Rows int64

	// Duplicates is the number of rows ignored due to an existing primary key
	Duplicates int64

	// Elapsed is the wall-clock duration of the run
	Elapsed time.Duration
}
