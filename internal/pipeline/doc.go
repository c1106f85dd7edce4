// Package pipeline implements the concurrent ingestion core: a directory
// scanner producing work items, a pool of workers each owning one database
// connection, and the coordinator that wires them together and waits for
// drain.
//
// The work channel is the only resource shared across goroutines. Skips and
// abandons stay inside a worker; only connection failures at worker startup
// and an inaccessible root stop the run.
package pipeline
