// Package vault orchestrates remote mutations against the record store
// and the refresh-after-mutation contract. Every mutating operation
// issues the remote write first, then re-fetches the owner's list; a
// refresh failure after a successful write is reported as a distinct
// "saved but stale" status and never fails the mutation.
package vault

import (
	"context"
	"fmt"
	"strings"

	"github.com/milavault/milavault/internal/client/draft"
	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/client/remote"
	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/logging"
)

const statusNotAuthenticated = "Not authenticated. Please log in again."

type Controller struct {
	store  remote.RecordStore
	drafts *draft.Store
	logger logging.Logger
	people []models.Person
	status string
}

func NewController(store remote.RecordStore, drafts *draft.Store, logger logging.Logger) *Controller {
	return &Controller{
		store:  store,
		drafts: drafts,
		logger: logger.With("module", "vault_controller"),
	}
}

// People returns the in-memory record list: the result of the most recent
// successful fetch. It is only ever replaced wholesale by a refresh.
func (c *Controller) People() []models.Person {
	return c.people
}

// Status returns the user-facing status line set by the last operation.
func (c *Controller) Status() string {
	return c.status
}

// NoteValue returns the live notes value for a person: the unsaved draft
// if one exists, else the stored attribute.
func (c *Controller) NoteValue(p models.Person) string {
	if v, ok := c.drafts.Note(p.ID); ok {
		return v
	}
	return p.Notes
}

// Refresh re-fetches the owner's records and replaces the list.
func (c *Controller) Refresh(ctx context.Context) error {
	if _, ok := c.store.CurrentUser(); !ok {
		c.status = statusNotAuthenticated
		return common.ErrNotAuthenticated
	}

	people, err := c.store.List(ctx)
	if err != nil {
		c.logger.Error(ctx, "refresh failed", "error", err)
		c.status = "Could not load people. Please retry."
		return fmt.Errorf("error fetching people: %w", err)
	}

	c.people = people
	c.status = ""
	return nil
}

// Create validates and stores a new person, then refreshes the list.
func (c *Controller) Create(ctx context.Context, attrs models.Attributes, notes string) error {
	if strings.TrimSpace(attrs.Name) == "" {
		c.status = "Name is required."
		return common.ErrValidation
	}
	if _, ok := c.store.CurrentUser(); !ok {
		c.status = statusNotAuthenticated
		return common.ErrNotAuthenticated
	}

	c.status = "Saving..."
	if _, err := c.store.Insert(ctx, personFrom("", attrs, notes)); err != nil {
		c.status = err.Error()
		return err
	}

	c.refreshAfterMutation(ctx, "Person added!", "Saved, but list did not refresh. Reload the page.")
	return nil
}

// Update replaces all attributes of the record, then refreshes.
func (c *Controller) Update(ctx context.Context, id string, attrs models.Attributes, notes string) error {
	return c.update(ctx, id, attrs, notes, updateLabels{
		saving:   "Saving changes...",
		saved:    "Person updated!",
		stale:    "Updated, but list did not refresh. Reload the page.",
		required: "Name is required.",
	})
}

// Autosave is Update triggered implicitly when the user switches edit
// targets. Same contract, distinct status line.
func (c *Controller) Autosave(ctx context.Context, id string, attrs models.Attributes, notes string) error {
	return c.update(ctx, id, attrs, notes, updateLabels{
		saving:   "Autosaving...",
		saved:    "Changes autosaved.",
		stale:    "Autosaved, but list did not refresh. Reload the page.",
		required: "Name is required before autosaving. Draft kept locally.",
	})
}

type updateLabels struct {
	saving   string
	saved    string
	stale    string
	required string
}

func (c *Controller) update(ctx context.Context, id string, attrs models.Attributes, notes string, labels updateLabels) error {
	if strings.TrimSpace(attrs.Name) == "" {
		c.status = labels.required
		return common.ErrValidation
	}
	if _, ok := c.store.CurrentUser(); !ok {
		c.status = statusNotAuthenticated
		return common.ErrNotAuthenticated
	}

	c.status = labels.saving
	if err := c.store.Update(ctx, personFrom(id, attrs, notes)); err != nil {
		c.status = err.Error()
		return err
	}

	c.refreshAfterMutation(ctx, labels.saved, labels.stale)
	return nil
}

// SaveNote replaces only the notes attribute of the record.
func (c *Controller) SaveNote(ctx context.Context, id, notes string) error {
	if _, ok := c.store.CurrentUser(); !ok {
		c.status = statusNotAuthenticated
		return common.ErrNotAuthenticated
	}

	c.status = "Saving note..."
	if err := c.store.UpdateNotes(ctx, id, notes); err != nil {
		c.status = err.Error()
		return err
	}

	c.refreshAfterMutation(ctx, "Note saved!", "Saved, but list did not refresh. Reload the page.")
	return nil
}

// Delete removes the record. On success any drafts keyed by the id are
// discarded before the refresh; on failure the record stays in the list.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if _, ok := c.store.CurrentUser(); !ok {
		c.status = statusNotAuthenticated
		return common.ErrNotAuthenticated
	}

	c.status = "Deleting..."
	if err := c.store.Delete(ctx, id); err != nil {
		c.status = err.Error()
		return err
	}

	// Cleanup is keyed by id, not by "currently active", so a delete
	// resolving after the user navigated away still clears the right rows.
	c.drafts.DeleteEdit(ctx, id)
	c.drafts.DeleteNote(ctx, id)

	c.refreshAfterMutation(ctx, "Person deleted.", "Deleted, but list did not refresh. Reload the page.")
	return nil
}

// refreshAfterMutation runs the mandatory post-write refresh. The write
// already succeeded, so a refresh failure only marks the list stale.
func (c *Controller) refreshAfterMutation(ctx context.Context, okStatus, staleStatus string) {
	people, err := c.store.List(ctx)
	if err != nil {
		c.logger.Warn(ctx, "list refresh failed after successful write", "error", err)
		c.status = staleStatus
		return
	}
	c.people = people
	c.status = okStatus
}

func personFrom(id string, attrs models.Attributes, notes string) models.Person {
	return models.Person{
		ID:              id,
		Name:            attrs.Name,
		Contact:         attrs.Contact,
		Email:           attrs.Email,
		Address:         attrs.Address,
		SocialFacebook:  attrs.SocialFacebook,
		SocialInstagram: attrs.SocialInstagram,
		Notes:           notes,
	}
}
