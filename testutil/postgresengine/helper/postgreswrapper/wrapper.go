package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter/postgresengine"
	"github.com/AntonStoeckl/queryfilter-go/testutil/postgresengine/config"
)

// Adapter type constants
const (
	envAdapterType     = "ADAPTER_TYPE"
	typePGXPool        = "pgx.pool"
	typePGXPoolReplica = "pgx.pool.replica"
	typeSQLDB          = "sql.db"
	typeSQLXDB         = "sqlx.db"
	connectTimeout     = 3 * time.Second
)

// Wrapper abstracts over the different adapter types.
type Wrapper interface {
	NewEntityStore(rootTable string, options ...postgresengine.Option) (postgresengine.EntityStore, error)
	Exec(ctx context.Context, query string, args ...any) error
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool        *pgxpool.Pool
	withReplica bool
}

func (w *PGXPoolWrapper) NewEntityStore(rootTable string, options ...postgresengine.Option) (postgresengine.EntityStore, error) {
	if w.withReplica {
		return postgresengine.NewEntityStoreFromPGXPoolAndReplica(w.pool, w.pool, rootTable, options...)
	}

	return postgresengine.NewEntityStoreFromPGXPool(w.pool, rootTable, options...)
}

func (w *PGXPoolWrapper) Exec(ctx context.Context, query string, args ...any) error {
	_, err := w.pool.Exec(ctx, query, args...)

	return err
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db *sql.DB
}

func (w *SQLDBWrapper) NewEntityStore(rootTable string, options ...postgresengine.Option) (postgresengine.EntityStore, error) {
	return postgresengine.NewEntityStoreFromSQLDB(w.db, rootTable, options...)
}

func (w *SQLDBWrapper) Exec(ctx context.Context, query string, args ...any) error {
	_, err := w.db.ExecContext(ctx, query, args...)

	return err
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing.
type SQLXWrapper struct {
	db *sqlx.DB
}

func (w *SQLXWrapper) NewEntityStore(rootTable string, options ...postgresengine.Option) (postgresengine.EntityStore, error) {
	return postgresengine.NewEntityStoreFromSQLX(w.db, rootTable, options...)
}

func (w *SQLXWrapper) Exec(ctx context.Context, query string, args ...any) error {
	_, err := w.db.ExecContext(ctx, query, args...)

	return err
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the wrapper selected by ADAPTER_TYPE.
// The test is skipped if the test database cannot be reached.
func CreateWrapperWithTestConfig(t testing.TB) Wrapper {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	wrapper, err := createWrapper(ctx, strings.ToLower(os.Getenv(envAdapterType)))
	if err != nil {
		t.Skipf("PostgreSQL test database is not reachable at %s: %v", config.PostgresTestDSN(), err)
	}

	return wrapper
}

func createWrapper(ctx context.Context, adapterType string) (Wrapper, error) {
	switch adapterType {
	case typePGXPool, typePGXPoolReplica, "":
		poolConfig, err := config.PostgresPGXPoolTestConfig()
		if err != nil {
			return nil, err
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, err
		}

		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			return nil, pingErr
		}

		return &PGXPoolWrapper{pool: pool, withReplica: adapterType == typePGXPoolReplica}, nil

	case typeSQLDB:
		db, err := config.PostgresSQLDBTestConfig(ctx)
		if err != nil {
			return nil, err
		}

		return &SQLDBWrapper{db: db}, nil

	case typeSQLXDB:
		db, err := config.PostgresSQLXTestConfig(ctx)
		if err != nil {
			return nil, err
		}

		return &SQLXWrapper{db: db}, nil

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterType))
	}
}
