// Package logging provides concrete implementations of the tickload.Logger
// interface: a mutex-guarded stderr logger for the CLI and a discard logger
// for tests.
package logging
