package ingest

import (
	"fmt"

	"github.com/dataheck/tickload/pkg/tickload"
)

// Required CSV columns per timeframe. Minute bars additionally need the
// Time column to compose a full timestamp.
var (
	dayColumns    = []string{"Date", "Open", "High", "Low", "Close", "TotalVolume"}
	minuteColumns = append(append([]string{}, dayColumns...), "Time")
)

// requiredColumns returns the column set for a validated timeframe.
func requiredColumns(timeframe string) []string {
	if timeframe == tickload.TimeframeMinute {
		return minuteColumns
	}
	return dayColumns
}

// Transform builds one Bar from file metadata, the decomposed symbol root,
// the optional contract date, and a raw CSV record.
//
// Price and volume values pass through as text; the database casts them on
// insert. A record missing a required column for its timeframe is an error,
// and the caller abandons the rest of the file: silently ingesting part of a
// malformed file is worse than stopping it.
func Transform(meta tickload.FileMetadata, root string, contract *string, rec Record) (tickload.Bar, error) {
	values := make(map[string]string, len(minuteColumns))
	for _, column := range requiredColumns(meta.Timeframe) {
		value, ok := rec.Get(column)
		if !ok {
			return tickload.Bar{}, fmt.Errorf("record is missing required column %q", column)
		}
		values[column] = value
	}

	timestamp := values["Date"]
	if meta.Timeframe == tickload.TimeframeMinute {
		timestamp = values["Date"] + " " + values["Time"]
	}

	return tickload.Bar{
		Timestamp: timestamp,
		Symbol:    root,
		Contract:  contract,
		Open:      values["Open"],
		High:      values["High"],
		Low:       values["Low"],
		Close:     values["Close"],
		Volume:    values["TotalVolume"],
		Barsize:   meta.Timeframe,
	}, nil
}
