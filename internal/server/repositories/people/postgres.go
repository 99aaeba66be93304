package people

import (
	"context"
	"fmt"

	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/dbx"
	"github.com/milavault/milavault/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Person, error) {
	query := `
		SELECT id, user_id, name, contact, email, address, social_facebook, social_instagram, notes, created_at, updated_at
		FROM people
		WHERE user_id = $1
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select people: %w", err)
	}
	defer rows.Close()

	var result []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Contact, &p.Email, &p.Address,
			&p.SocialFacebook, &p.SocialInstagram, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, p *models.Person) error {
	query := `
		INSERT INTO people (id, user_id, name, contact, email, address, social_facebook, social_instagram, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.Contact, p.Email, p.Address,
		p.SocialFacebook, p.SocialInstagram, p.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Person) error {
	query := `
		UPDATE people
		SET name = $3, contact = $4, email = $5, address = $6,
		    social_facebook = $7, social_instagram = $8, notes = $9,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.Contact, p.Email, p.Address,
		p.SocialFacebook, p.SocialInstagram, p.Notes)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

func (r *PostgresRepository) UpdateNotes(ctx context.Context, id, userID, notes string) error {
	query := `UPDATE people SET notes = $3, updated_at = now() WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID, notes)
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

// checkAffected maps "zero rows touched" to ErrNotFound so owner-scoped
// writes against someone else's record fail the same way as a missing one.
func checkAffected(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
