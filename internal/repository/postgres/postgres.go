// Package postgres is the PostgreSQL backend, selected with
// DATABASE_DRIVER=postgres. It uses pgx through database/sql, wrapped in sqlx.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/migrations"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is the Postgres backend. It implements domain.Database.
type DB struct {
	X *sqlx.DB
}

// Connect parses dsn, opens a pool and checks connectivity.
func Connect(ctx context.Context, dsn string, opts Options) (*DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	// Fail fast on startup if Postgres is unreachable.
	cfg.ConnectTimeout = 5 * time.Second

	db := sqlx.NewDb(stdlib.OpenDB(*cfg), "pgx")

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to Postgres: %w", err)
	}
	return &DB{X: db}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	return migrations.Run(ctx, db.X.DB, migrations.Source{
		FS:          sub,
		Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	})
}

func (db *DB) Close() error {
	return db.X.Close()
}

func (db *DB) Records() domain.RecordStore { return &recordStore{db: db.X} }
func (db *DB) Values() domain.ValueStore {
	return &blobTable{db: db.X, table: "kv_values", key: "value_key"}
}
func (db *DB) Files() domain.FileStore {
	return &blobTable{db: db.X, table: "file_blobs", key: "storage_key"}
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
