// Package session holds the client's local editing state: the
// structured-field edit session (at most one active target, with
// autosave-on-switch) and the independent per-record notes session.
package session

import (
	"context"
	"errors"

	"github.com/milavault/milavault/internal/client/models"
)

// ErrNoActiveEdit is returned by operations that are only valid while a
// structured-field edit is in progress.
var ErrNoActiveEdit = errors.New("no active edit")

// Saver is the slice of the sync controller the edit session drives.
type Saver interface {
	Update(ctx context.Context, id string, attrs models.Attributes, notes string) error
	Autosave(ctx context.Context, id string, attrs models.Attributes, notes string) error
	Delete(ctx context.Context, id string) error
}

// NoteSaver is the slice of the sync controller the notes session drives.
type NoteSaver interface {
	SaveNote(ctx context.Context, id, notes string) error
}
