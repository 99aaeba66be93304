// Package remote is the client's view of the record store: an
// authenticated gRPC channel with owner scoping enforced server-side
// from the access token.
package remote

import (
	"context"

	"github.com/milavault/milavault/internal/client/models"
)

// User is the authenticated identity, available after Login.
type User struct {
	ID    string
	Email string
}

// RecordStore is the remote CRUD surface plus the authentication state
// the rest of the client needs. Every record operation is implicitly
// scoped to the logged-in owner.
type RecordStore interface {
	Close() error

	// RequestLoginLink asks the server to issue a login link for the
	// address and returns the single-use token.
	RequestLoginLink(ctx context.Context, email string) (string, error)

	// Login exchanges a login token for a session.
	Login(ctx context.Context, loginToken string) error

	// CurrentUser reports the authenticated identity, if any.
	CurrentUser() (User, bool)

	Ping(ctx context.Context) error

	// List fetches the owner's records ordered by name ascending.
	List(ctx context.Context) ([]models.Person, error)

	// Insert creates a record and returns the server-assigned id.
	Insert(ctx context.Context, p models.Person) (string, error)

	// Update replaces all attributes of the record.
	Update(ctx context.Context, p models.Person) error

	// UpdateNotes replaces only the notes attribute.
	UpdateNotes(ctx context.Context, id, notes string) error

	Delete(ctx context.Context, id string) error
}
