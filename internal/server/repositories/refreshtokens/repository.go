// Package refreshtokens stores rotating refresh tokens.
package refreshtokens

import (
	"context"

	"github.com/milavault/milavault/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, t *models.RefreshToken) error

	// Find returns the token row, or common.ErrNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	Delete(ctx context.Context, token string) error
}
