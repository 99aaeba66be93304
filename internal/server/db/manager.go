// Package db wires the server's PostgreSQL connection, migrations, and
// repositories behind a single manager.
package db

import (
	"context"
	"database/sql"

	"github.com/milavault/milavault/internal/server/repositories/logintokens"
	"github.com/milavault/milavault/internal/server/repositories/people"
	"github.com/milavault/milavault/internal/server/repositories/refreshtokens"
	"github.com/milavault/milavault/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	LoginTokens() logintokens.Repository
	RefreshTokens() refreshtokens.Repository
	People() people.Repository
}
