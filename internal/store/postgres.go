package store

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"bizfinder/internal/models"
	"bizfinder/migrations"
)

// knownTable holds one row per known OSM node id.
const knownTable = "known_places"

// Pool is the subset of *pgxpool.Pool used by PostgresStore.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// PostgresStore keeps the known-ID set in a PostgreSQL table.
type PostgresStore struct {
	pool Pool
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ConnectPostgres creates a connection pool and verifies it with a ping.
func ConnectPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations runs all embedded SQL migrations.
func RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Load reads every known id.
func (s *PostgresStore) Load(ctx context.Context) (models.IDSet, error) {
	rows, err := s.pool.Query(ctx, "SELECT id FROM "+knownTable)
	if err != nil {
		return nil, eris.Wrap(err, "store: query known ids")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, eris.Wrap(err, "store: scan known ids")
	}

	return models.NewIDSet(ids...), nil
}

// Save replaces the table contents with ids in a single transaction.
func (s *PostgresStore) Save(ctx context.Context, ids models.IDSet) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "store: begin")
	}

	if _, err := tx.Exec(ctx, "DELETE FROM "+knownTable); err != nil {
		_ = tx.Rollback(ctx)
		return eris.Wrap(err, "store: clear known ids")
	}

	if ids.Len() > 0 {
		rows := make([][]any, 0, ids.Len())
		for _, id := range ids.Sorted() {
			rows = append(rows, []any{id})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{knownTable}, []string{IDColumn}, pgx.CopyFromRows(rows)); err != nil {
			_ = tx.Rollback(ctx)
			return eris.Wrapf(err, "store: COPY INTO %s", knownTable)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return eris.Wrap(err, "store: commit")
	}
	return nil
}

// Ping checks the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
