// Package testinfra starts throwaway PostgreSQL containers for integration
// tests. Tests fall back to TICKLOAD_TEST_CONN when Docker is unavailable.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// PostgresImage must be 15+ for UNIQUE NULLS NOT DISTINCT.
	PostgresImage    = "postgres:17-alpine"
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDB       = "postgres"
)

// PostgresContainer wraps a running container with its connection string.
type PostgresContainer struct {
	*postgres.PostgresContainer
	ConnString string
}

// StartPostgres runs a plain PostgreSQL container and waits for readiness.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	ctr, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithUsername(PostgresUser),
		postgres.WithPassword(PostgresPassword),
		postgres.WithDatabase(PostgresDB),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &PostgresContainer{PostgresContainer: ctr, ConnString: connStr}, nil
}

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

func getOrStartContainer() (string, error) {
	containerOnce.Do(func() {
		ctr, err := StartPostgres(context.Background())
		if err != nil {
			containerErr = err
			return
		}
		containerConn = ctr.ConnString
	})
	return containerConn, containerErr
}

// RequireDatabase returns a connection string for integration tests.
// Priority: TICKLOAD_TEST_CONN env var > auto-started testcontainer > skip.
// Also skips in -short mode.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	if connString := os.Getenv("TICKLOAD_TEST_CONN"); connString != "" {
		return connString
	}

	connString, err := getOrStartContainer()
	if err != nil {
		t.Skipf("TICKLOAD_TEST_CONN not set and Docker unavailable: %v", err)
	}
	return connString
}
