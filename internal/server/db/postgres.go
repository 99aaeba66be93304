package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/milavault/milavault/internal/server/migrations"
	"github.com/milavault/milavault/internal/server/repositories/logintokens"
	"github.com/milavault/milavault/internal/server/repositories/people"
	"github.com/milavault/milavault/internal/server/repositories/refreshtokens"
	"github.com/milavault/milavault/internal/server/repositories/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db            *sql.DB
	users         users.Repository
	loginTokens   logintokens.Repository
	refreshTokens refreshtokens.Repository
	people        people.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) LoginTokens() logintokens.Repository {
	return m.loginTokens
}

func (m *PostgresRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

func (m *PostgresRepositoryManager) People() people.Repository {
	return m.people
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, m.db, ".")
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		users:         users.NewPostgresRepository(db),
		loginTokens:   logintokens.NewPostgresRepository(db),
		refreshTokens: refreshtokens.NewPostgresRepository(db),
		people:        people.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
