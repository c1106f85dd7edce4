package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataheck/tickload/internal/logging"
	"github.com/dataheck/tickload/pkg/tickload"
)

// failingFactory simulates a connection-factory failure at worker startup,
// which must be fatal for the whole run.
type failingFactory struct {
	err error
}

func (f *failingFactory) Connect(ctx context.Context) (*pgx.Conn, error) {
	return nil, f.err
}

func validConfig(root string) tickload.LoadConfig {
	return tickload.LoadConfig{
		RootDir:          root,
		ConnectionString: "postgresql://localhost:5432/marketdata",
		Workers:          2,
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	coordinator := New(&failingFactory{err: errors.New("unused")}, logging.NewNullLogger())

	_, err := coordinator.Run(context.Background(), tickload.LoadConfig{})
	assert.ErrorIs(t, err, tickload.ErrInvalidConfig)
}

func TestRun_RootMissingIsFatal(t *testing.T) {
	coordinator := New(&failingFactory{err: errors.New("unused")}, logging.NewNullLogger())

	config := validConfig(filepath.Join(t.TempDir(), "absent"))
	_, err := coordinator.Run(context.Background(), config)
	assert.ErrorIs(t, err, tickload.ErrRootNotFound)
}

func TestRun_RootIsFileIsFatal(t *testing.T) {
	coordinator := New(&failingFactory{err: errors.New("unused")}, logging.NewNullLogger())

	file := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := coordinator.Run(context.Background(), validConfig(file))
	assert.ErrorIs(t, err, tickload.ErrRootNotFound)
}

func TestRun_ConnectionFailureIsFatalAndJoins(t *testing.T) {
	// Even with work queued, a factory failure must stop the run and
	// return after every worker goroutine has exited.
	root := t.TempDir()
	for _, name := range []string{
		"ES-cme-cme-future-day-close.csv",
		"NQ-cme-cme-future-day-close.csv",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name),
			[]byte("Date,Open,High,Low,Close,TotalVolume\n2020-01-02,1,2,0,1,10\n"), 0644))
	}

	factoryErr := errors.New("dial refused")
	coordinator := New(&failingFactory{err: factoryErr}, logging.NewNullLogger())

	_, err := coordinator.Run(context.Background(), validConfig(root))
	require.Error(t, err)
	assert.ErrorIs(t, err, factoryErr)
}

func TestNew_NilDependenciesPanic(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, logging.NewNullLogger())
	})
	assert.Panics(t, func() {
		New(&failingFactory{}, nil)
	})
}
