// Package statedb opens the panel's local state database and applies its
// schema migrations. The database holds exactly one durable concern: the
// persisted session record (see repositories/state).
package statedb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// RunMigrations brings the state database schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, "migrations")
}

// Open opens (creating if needed) the sqlite state database at dsn and runs
// migrations. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
