package logintokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/dbx"
	"github.com/milavault/milavault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.LoginToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO login_tokens (id, user_id, secret_hash, expires_at)
		VALUES ($1, $2, $3, $4)
	`, t.ID, t.UserID, t.SecretHash, t.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert login token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.LoginToken, error) {
	var t models.LoginToken
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, secret_hash, expires_at, consumed_at
		FROM login_tokens WHERE id = $1
	`, id).Scan(&t.ID, &t.UserID, &t.SecretHash, &t.ExpiresAt, &t.ConsumedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select login token: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) Consume(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE login_tokens SET consumed_at = now()
		WHERE id = $1 AND consumed_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to consume login token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM login_tokens WHERE expires_at < now()`)
	if err != nil {
		return fmt.Errorf("failed to delete expired login tokens: %w", err)
	}
	return nil
}
