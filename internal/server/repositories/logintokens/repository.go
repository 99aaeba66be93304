// Package logintokens stores single-use email-link credentials.
package logintokens

import (
	"context"

	"github.com/milavault/milavault/internal/server/models"
)

type Repository interface {
	// Create stores a freshly issued token.
	Create(ctx context.Context, t *models.LoginToken) error

	// GetByID returns the token by its id half, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.LoginToken, error)

	// Consume marks the token used. Consuming an already-consumed token
	// returns common.ErrNotFound, making the operation single-shot even
	// under a concurrent replay.
	Consume(ctx context.Context, id string) error

	// DeleteExpired removes tokens past their expiry.
	DeleteExpired(ctx context.Context) error
}
