// Package users provides the PostgreSQL-backed account repository.
package users

import (
	"context"

	"github.com/milavault/milavault/internal/server/models"
)

type Repository interface {
	// GetByEmail returns the user for a normalized email address, or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user by id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Create stores a new user.
	Create(ctx context.Context, u *models.User) error
}
