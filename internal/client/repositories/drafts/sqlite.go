package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, namespace, id string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM drafts WHERE namespace = ? AND id = ?`, namespace, id).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select draft: %w", err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, namespace, id string, value []byte) error {
	query := `INSERT INTO drafts (namespace, id, value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(namespace, id) DO UPDATE SET value = excluded.value,
				updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, namespace, id, value)
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, namespace, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE namespace = ? AND id = ?`, namespace, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListNamespace(ctx context.Context, namespace string) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, value FROM drafts WHERE namespace = ?`, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var id string
		var value []byte
		if err := rows.Scan(&id, &value); err != nil {
			return nil, err
		}
		result[id] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
