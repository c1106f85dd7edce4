package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dataheck/tickload/pkg/tickload"
)

// Factory creates dedicated single connections for ingestion workers.
// Unlike a pool, every Connect call dials a fresh connection: the worker
// model requires exclusive ownership for the worker's whole lifetime, so
// handing out shared or recycled connections would be wrong here.
type Factory struct {
	connString string
}

// NewFactory creates a connection factory for the given connection string.
// Panics if connString is empty; configuration is validated before this point.
func NewFactory(connString string) *Factory {
	if connString == "" {
		panic("connString cannot be empty")
	}
	return &Factory{connString: connString}
}

// Connect establishes one new connection and verifies it with a ping.
// The caller owns the connection and must close it.
func (f *Factory) Connect(ctx context.Context) (*pgx.Conn, error) {
	config, err := pgx.ParseConfig(f.connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return nil, wrapConnectionError(err, config.Host, int(config.Port), config.Database)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, wrapConnectionError(err, config.Host, int(config.Port), config.Database)
	}

	return conn, nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable
// guidance. Every branch carries tickload.ErrConnectionFailed so callers can
// classify the failure with errors.Is.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %v`, tickload.ErrConnectionFailed, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`%w: cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable

Original error: %v`, tickload.ErrConnectionFailed, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $PGPASSWORD or ~/.pgpass)
  - Wrong username
  - User does not have access to the database

Original error: %v`, tickload.ErrConnectionFailed, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database "%s" does not exist

To create it:
  createdb %s

Original error: %v`, tickload.ErrConnectionFailed, database, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Firewall silently dropping packets
  - Wrong host/port (server not listening)

Original error: %v`, tickload.ErrConnectionFailed, addr, err)

	case strings.Contains(errStr, "too many connections"):
		return fmt.Errorf(`%w: too many connections to database "%s"

Each worker holds one dedicated connection; lower --workers or raise
max_connections in postgresql.conf.

Original error: %v`, tickload.ErrConnectionFailed, database, err)

	default:
		return fmt.Errorf("%w: %v", tickload.ErrConnectionFailed, err)
	}
}

// Verify Factory implements the interface at compile time
var _ tickload.ConnFactory = (*Factory)(nil)
