package tickload

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ConnFactory produces independent live database connections on demand.
// Each worker obtains exactly one connection at startup and owns it
// exclusively until the worker drains; connections are never shared or
// migrated between workers, so implementations must not pool or reuse
// the connections they hand out.
type ConnFactory interface {
	// Connect establishes a new dedicated connection to the database.
	// The returned connection must be closed by the caller when done.
	Connect(ctx context.Context) (*pgx.Conn, error)
}
