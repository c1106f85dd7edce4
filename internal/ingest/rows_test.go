package ingest

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ES-cme-cme-future-day-close.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpenRows_HeaderDriven(t *testing.T) {
	path := writeCSV(t, "Date,Open,High,Low,Close,TotalVolume\n2020-01-02,100,101,99,100.5,1000\n")

	rows, err := OpenRows(path)
	require.NoError(t, err)
	defer rows.Close()

	rec, err := rows.Next()
	require.NoError(t, err)

	date, ok := rec.Get("Date")
	require.True(t, ok)
	assert.Equal(t, "2020-01-02", date)

	volume, ok := rec.Get("TotalVolume")
	require.True(t, ok)
	assert.Equal(t, "1000", volume)

	_, ok = rec.Get("Time")
	assert.False(t, ok, "absent column must report !ok")

	_, err = rows.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestOpenRows_ColumnOrderIrrelevant(t *testing.T) {
	path := writeCSV(t, "TotalVolume,Close,Low,High,Open,Date\n1000,100.5,99,101,100,2020-01-02\n")

	rows, err := OpenRows(path)
	require.NoError(t, err)
	defer rows.Close()

	rec, err := rows.Next()
	require.NoError(t, err)

	open, ok := rec.Get("Open")
	require.True(t, ok)
	assert.Equal(t, "100", open)
}

func TestOpenRows_BOMStripped(t *testing.T) {
	path := writeCSV(t, "\xef\xbb\xbfDate,Open,High,Low,Close,TotalVolume\n2020-01-02,1,2,0,1,10\n")

	rows, err := OpenRows(path)
	require.NoError(t, err)
	defer rows.Close()

	rec, err := rows.Next()
	require.NoError(t, err)

	_, ok := rec.Get("Date")
	assert.True(t, ok, "BOM on the first header cell must not hide the column")
}

func TestOpenRows_MissingFile(t *testing.T) {
	_, err := OpenRows(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestOpenRows_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := OpenRows(path)
	assert.Error(t, err, "a file without a header is unreadable")
}

func TestRowReader_ShortRowFails(t *testing.T) {
	path := writeCSV(t, "Date,Open,High,Low,Close,TotalVolume\n2020-01-02,100\n")

	rows, err := OpenRows(path)
	require.NoError(t, err)
	defer rows.Close()

	_, err = rows.Next()
	assert.Error(t, err, "rows with the wrong field count are parse errors")
}
