// Package people provides the PostgreSQL-backed repository for contact
// records. Every operation is scoped by the owning user's id.
package people

import (
	"context"

	"github.com/milavault/milavault/internal/server/models"
)

type Repository interface {
	// ListByUser returns all of userID's people ordered by name ascending.
	ListByUser(ctx context.Context, userID string) ([]models.Person, error)

	// Insert stores a new person. The caller assigns the id.
	Insert(ctx context.Context, p *models.Person) error

	// Update replaces all editable attributes of (p.ID, p.UserID).
	// Returns common.ErrNotFound if no such row exists for that owner.
	Update(ctx context.Context, p *models.Person) error

	// UpdateNotes replaces only the notes attribute of (id, userID).
	UpdateNotes(ctx context.Context, id, userID, notes string) error

	// Delete removes (id, userID). Returns common.ErrNotFound if absent.
	Delete(ctx context.Context, id, userID string) error
}
