package tickload

// Logger provides a pluggable logging interface for tickload operations.
// Implementations must be safe for concurrent use by multiple goroutines:
// every worker logs skips and abandons through the same Logger.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Warn logs non-fatal anomalies: skipped and abandoned files.
	// Always logged regardless of verbose mode.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
