package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataheck/tickload/pkg/tickload"
)

func record(pairs map[string]string) Record {
	columns := make(map[string]int, len(pairs))
	fields := make([]string, 0, len(pairs))
	for name, value := range pairs {
		columns[name] = len(fields)
		fields = append(fields, value)
	}
	return Record{columns: columns, fields: fields}
}

func dayMeta() tickload.FileMetadata {
	return tickload.FileMetadata{
		Symbol: "es", Datasource: "cme", Exchange: "cme",
		Market: "future", Timeframe: tickload.TimeframeDay, Field: "close",
	}
}

func TestTransform_DayBar(t *testing.T) {
	rec := record(map[string]string{
		"Date": "2020-01-02", "Open": "100", "High": "101",
		"Low": "99", "Close": "100.5", "TotalVolume": "1000",
	})

	bar, err := Transform(dayMeta(), "es", nil, rec)
	require.NoError(t, err)

	assert.Equal(t, "2020-01-02", bar.Timestamp)
	assert.Equal(t, "es", bar.Symbol)
	assert.Nil(t, bar.Contract)
	assert.Equal(t, "100", bar.Open)
	assert.Equal(t, "101", bar.High)
	assert.Equal(t, "99", bar.Low)
	assert.Equal(t, "100.5", bar.Close)
	assert.Equal(t, "1000", bar.Volume)
	assert.Equal(t, "day", bar.Barsize)
}

func TestTransform_MinuteBarComposesTimestamp(t *testing.T) {
	meta := dayMeta()
	meta.Symbol = "@vxj20"
	meta.Timeframe = tickload.TimeframeMinute

	contract := "2020-04-01"
	rec := record(map[string]string{
		"Date": "2020-04-01", "Time": "09:30:00", "Open": "15.1",
		"High": "15.3", "Low": "15.0", "Close": "15.2", "TotalVolume": "250",
	})

	bar, err := Transform(meta, "@VX", &contract, rec)
	require.NoError(t, err)

	assert.Equal(t, "2020-04-01 09:30:00", bar.Timestamp)
	assert.Equal(t, "@VX", bar.Symbol)
	require.NotNil(t, bar.Contract)
	assert.Equal(t, "2020-04-01", *bar.Contract)
	assert.Equal(t, "minute", bar.Barsize)
}

func TestTransform_MissingColumnIsFatalForFile(t *testing.T) {
	rec := record(map[string]string{
		"Date": "2020-01-02", "Open": "100", "High": "101",
		"Low": "99", "Close": "100.5",
		// TotalVolume absent
	})

	_, err := Transform(dayMeta(), "es", nil, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TotalVolume")
}

func TestTransform_MinuteRequiresTime(t *testing.T) {
	meta := dayMeta()
	meta.Timeframe = tickload.TimeframeMinute

	rec := record(map[string]string{
		"Date": "2020-01-02", "Open": "100", "High": "101",
		"Low": "99", "Close": "100.5", "TotalVolume": "1000",
	})

	_, err := Transform(meta, "es", nil, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Time")
}

func TestTransform_DayIgnoresTimeColumn(t *testing.T) {
	// A day file that happens to carry a Time column still produces a
	// date-only timestamp.
	rec := record(map[string]string{
		"Date": "2020-01-02", "Time": "09:30:00", "Open": "100", "High": "101",
		"Low": "99", "Close": "100.5", "TotalVolume": "1000",
	})

	bar, err := Transform(dayMeta(), "es", nil, rec)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02", bar.Timestamp)
}

func TestTransform_EmptyValuesPassThrough(t *testing.T) {
	// Empty cells are carried verbatim; the executor maps them to NULL.
	rec := record(map[string]string{
		"Date": "2020-01-02", "Open": "", "High": "", "Low": "",
		"Close": "100.5", "TotalVolume": "",
	})

	bar, err := Transform(dayMeta(), "es", nil, rec)
	require.NoError(t, err)
	assert.Equal(t, "", bar.Open)
	assert.Equal(t, "", bar.Volume)
}
