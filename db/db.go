// Package db is the Postgres persistence layer: guild settings and the charades question bank.
package db

import (
	"context"
	"database/sql"
	"embed"

	"emperror.dev/errors"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/tracreed/ebina/common/log"

	migrate "github.com/rubenv/sql-migrate"

	// pgx driver for migrations
	_ "github.com/jackc/pgx/v4/stdlib"
)

// Errors
const (
	ErrNotFound  = errors.Sentinel("not found")
	ErrDuplicate = errors.Sentinel("already exists")
)

// sq is a squirrel builder for postgres
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Querier is any object that can query the database.
type Querier interface {
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// QueryCounter is told about every query, for metrics.
type QueryCounter interface {
	IncQuery()
}

type DB struct {
	*pgxpool.Pool

	Counter QueryCounter
}

// New runs migrations (unless skipped) and connects to the database.
func New(postgres string, autoMigrate bool) (*DB, error) {
	if autoMigrate {
		if _, err := RunMigrations(postgres); err != nil {
			return nil, errors.Wrap(err, "running migrations")
		}
	}

	pool, err := pgxpool.Connect(context.Background(), postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) count() {
	if db.Counter != nil {
		db.Counter.IncQuery()
	}
}

//go:embed migrations
var fs embed.FS

// RunMigrations runs all of the migrations in migrations/, returning how many were applied.
func RunMigrations(postgres string) (n int, err error) {
	db, err := sql.Open("pgx", postgres)
	if err != nil {
		return 0, errors.Wrap(err, "opening database")
	}

	// we close this because we end up using pgx's native driver for all other queries.
	defer db.Close()

	err = db.Ping()
	if err != nil {
		return 0, errors.Wrap(err, "pinging database")
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "migrations",
	}

	migrate.SetTable("migration_history")

	n, err = migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "running migrations")
	}

	if n != 0 {
		log.Debugf("Performed %v migrations!", n)
	}
	return n, nil
}

// isUniqueViolation returns true if err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
