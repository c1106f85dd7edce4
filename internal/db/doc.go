// Package db handles everything between the CLI and pgx: connection string
// parsing and assembly, the per-worker connection factory, and the one-shot
// bars table bootstrap that runs before ingestion starts.
package db
