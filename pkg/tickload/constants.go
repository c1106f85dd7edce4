package tickload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitSchemaError     = 12 // Failed to create or verify the bars table
	ExitRootError       = 13 // Traversal root directory not accessible
)

const (
	// DefaultWorkers is the default number of ingestion workers when
	// --workers is not specified.
	DefaultWorkers = 4

	// DefaultTimeout is the catastrophic failure protection timeout.
	// Bulk loads of large trees legitimately take a long time.
	DefaultTimeout = 2 * time.Hour

	// WorkQueueDepth is the buffer size of the work distribution channel.
	// Deep enough that the scanner rarely blocks on slow workers.
	WorkQueueDepth = 1024

	// FilenameSegments is the exact number of '-'-delimited segments a
	// candidate filename must split into (minus extension).
	FilenameSegments = 6

	// PivotYear is the two-digit year boundary for contract year completion:
	// years >= PivotYear map to 1900+year, years below map to 2000+year.
	// Fixed by CME data convention, not derived from the current date.
	PivotYear = 40
)
