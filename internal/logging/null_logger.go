package logging

// NullLogger discards all log messages. Useful for tests that exercise the
// pipeline without caring about observability output.
type NullLogger struct{}

// NewNullLogger creates a logger that discards everything.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose discards the message.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info discards the message.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Warn discards the message.
func (l *NullLogger) Warn(format string, args ...interface{}) {}

// Error discards the message.
func (l *NullLogger) Error(format string, args ...interface{}) {}
