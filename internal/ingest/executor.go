package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dataheck/tickload/pkg/tickload"
)

// uniqueViolation is the SQLSTATE PostgreSQL raises for primary-key and
// unique-constraint conflicts.
const uniqueViolation = "23505"

// Statement names registered on the worker's connection. Prepared once at
// executor construction and reused for every row the worker processes.
const (
	stmtInsertDay    = "tickload_insert_day"
	stmtInsertMinute = "tickload_insert_minute"
)

const insertDaySQL = `
INSERT INTO bars (ts, contract, symbol, open, high, low, close, volume, barsize)
VALUES ($1::timestamptz, $2::date, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8::numeric, 'day')
ON CONFLICT DO NOTHING`

const insertMinuteSQL = `
INSERT INTO bars (ts, contract, symbol, open, high, low, close, volume, barsize)
VALUES ($1::timestamptz, $2::date, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8::numeric, 'minute')
ON CONFLICT DO NOTHING`

// Executor owns the prepared insert statements of one worker's connection.
// It is bound to that connection for its entire lifetime and is not safe for
// use from any other goroutine, matching the one-connection-per-worker model.
type Executor struct {
	conn *pgx.Conn
}

// NewExecutor prepares the day and minute insert statements against the
// given connection. A preparation failure is a connection-level problem and
// is fatal for the owning worker.
func NewExecutor(ctx context.Context, conn *pgx.Conn) (*Executor, error) {
	if conn == nil {
		panic("conn cannot be nil")
	}

	if _, err := conn.Prepare(ctx, stmtInsertDay, insertDaySQL); err != nil {
		return nil, fmt.Errorf("failed to prepare day insert: %w", err)
	}
	if _, err := conn.Prepare(ctx, stmtInsertMinute, insertMinuteSQL); err != nil {
		return nil, fmt.Errorf("failed to prepare minute insert: %w", err)
	}

	return &Executor{conn: conn}, nil
}

// Insert binds the bar's fields to the prepared statement matching its
// barsize and executes it.
//
// Returns:
//   - inserted: true when a new row landed, false when the bar's key already
//     existed (idempotent no-op, never an error)
//   - err: any other database failure; the caller abandons the file
func (e *Executor) Insert(ctx context.Context, bar tickload.Bar) (inserted bool, err error) {
	name := stmtInsertDay
	if bar.Barsize == tickload.TimeframeMinute {
		name = stmtInsertMinute
	}

	tag, err := e.conn.Exec(ctx, name,
		bar.Timestamp,
		bar.Contract,
		bar.Symbol,
		nullable(bar.Open),
		nullable(bar.High),
		nullable(bar.Low),
		nullable(bar.Close),
		nullable(bar.Volume),
	)
	if err != nil {
		// ON CONFLICT DO NOTHING normally absorbs duplicates, but a conflict
		// can still surface as 23505 (e.g. when the table predates the
		// constraint name the statement expects). Same key, same answer.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, nil
		}
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// nullable maps an empty CSV cell to SQL NULL; '' does not cast to numeric.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
