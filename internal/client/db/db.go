// Package db opens the client's local SQLite database and wires the
// repositories over it.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/milavault/milavault/internal/client/migrations"
	"github.com/milavault/milavault/internal/client/repositories/drafts"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Drafts drafts.Repository
	DB     *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Drafts: drafts.NewSQLiteRepository(db),
		DB:     db,
	}, nil
}
