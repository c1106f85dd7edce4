package market

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dataheck/tickload/pkg/tickload"
)

// Sentinel errors for filename rejection. All of them mean "skip this file",
// never "stop the run"; callers log and continue with the next file.
var (
	// ErrNotCSV indicates the file extension is not .csv (case-insensitive).
	ErrNotCSV = errors.New("extension is not csv")

	// ErrSegmentCount indicates the filename does not split into exactly
	// six '-'-delimited segments.
	ErrSegmentCount = errors.New("filename does not have six segments")

	// ErrUnknownTimeframe indicates the timeframe segment is neither
	// "day" nor "minute".
	ErrUnknownTimeframe = errors.New("unknown timeframe")
)

// ParseFileName extracts structured metadata from a candidate filename of
// the form symbol-datasource-exchange-market-timeframe-field.csv.
//
// The name is case-folded before splitting, so all returned fields are lower
// case. Any path prefix is ignored; only the base name is parsed.
//
// Returns:
//   - tickload.FileMetadata: the six positional fields
//   - error: a rejection (wrapping ErrNotCSV, ErrSegmentCount, or
//     ErrUnknownTimeframe) when the name does not match
func ParseFileName(name string) (tickload.FileMetadata, error) {
	base := strings.ToLower(filepath.Base(name))

	ext := filepath.Ext(base)
	if ext != ".csv" {
		return tickload.FileMetadata{}, fmt.Errorf("%s: %w", base, ErrNotCSV)
	}

	stem := strings.TrimSuffix(base, ext)
	parts := strings.Split(stem, "-")
	if len(parts) != tickload.FilenameSegments {
		return tickload.FileMetadata{}, fmt.Errorf("%s: got %d segments: %w", base, len(parts), ErrSegmentCount)
	}

	meta := tickload.FileMetadata{
		Symbol:     parts[0],
		Datasource: parts[1],
		Exchange:   parts[2],
		Market:     parts[3],
		Timeframe:  parts[4],
		Field:      parts[5],
	}

	if meta.Timeframe != tickload.TimeframeDay && meta.Timeframe != tickload.TimeframeMinute {
		return tickload.FileMetadata{}, fmt.Errorf("%s: timeframe %q: %w", base, meta.Timeframe, ErrUnknownTimeframe)
	}

	return meta, nil
}
