package db

import (
	"context"
	"fmt"

	"github.com/dataheck/tickload/pkg/tickload"
)

// createBarsSQL creates the bars table the loader inserts into.
//
// The natural key is (symbol, barsize, contract, ts). contract is NULL for
// non-futures symbols, and a plain unique constraint would treat every NULL
// as distinct, defeating idempotent re-ingestion for equities; NULLS NOT
// DISTINCT (PostgreSQL 15+) makes NULL contracts collide like any other
// value. Inserts rely on this constraint via ON CONFLICT DO NOTHING.
const createBarsSQL = `
CREATE TABLE IF NOT EXISTS bars (
	ts       timestamptz NOT NULL,
	contract date,
	symbol   text NOT NULL,
	open     numeric,
	high     numeric,
	low      numeric,
	close    numeric,
	volume   numeric,
	barsize  text NOT NULL,
	CONSTRAINT bars_natural_key UNIQUE NULLS NOT DISTINCT (symbol, barsize, contract, ts)
)`

// EnsureSchema creates the bars table if it does not exist, using a
// short-lived connection from the factory. Runs exactly once, before any
// worker starts; the ingestion core assumes the table is in place.
func EnsureSchema(ctx context.Context, factory tickload.ConnFactory, logger tickload.Logger) error {
	conn, err := factory.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, createBarsSQL); err != nil {
		return fmt.Errorf("%w: %v", tickload.ErrSchemaFailed, err)
	}

	logger.Verbose("bars table verified")
	return nil
}
