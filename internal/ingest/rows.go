package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Record is one CSV data row addressed by column header rather than position.
type Record struct {
	columns map[string]int
	fields  []string
}

// Get returns the raw text of the named column and whether the column exists
// in the file's header.
func (r Record) Get(column string) (string, bool) {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.fields) {
		return "", false
	}
	return r.fields[idx], true
}

// RowReader streams the data rows of one CSV file in file order.
// Not safe for concurrent use; each worker reads one file at a time.
type RowReader struct {
	file    *os.File
	reader  *csv.Reader
	columns map[string]int
}

// OpenRows opens a CSV file and consumes its header row, building the
// column index used by every subsequent Record.
//
// Returns an error when the file cannot be opened or the header cannot be
// read; callers treat that as a skip, not a worker failure.
func OpenRows(path string) (*RowReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		// Strip a UTF-8 BOM on the first header cell and incidental padding.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}

	return &RowReader{
		file:    file,
		reader:  reader,
		columns: columns,
	}, nil
}

// Next returns the next data row. It returns io.EOF after the last row and
// a parse error for structurally broken rows (wrong field count, bad
// quoting); callers abandon the file on such errors.
func (r *RowReader) Next() (Record, error) {
	fields, err := r.reader.Read()
	if err != nil {
		return Record{}, err
	}
	return Record{columns: r.columns, fields: fields}, nil
}

// Close releases the underlying file.
func (r *RowReader) Close() error {
	return r.file.Close()
}
