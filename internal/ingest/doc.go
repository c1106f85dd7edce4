// Package ingest turns parsed file metadata and raw CSV records into rows of
// the bars table: a header-driven CSV reader, a pure row transformer, and an
// insertion executor that owns the prepared statements of one worker's
// connection.
package ingest
