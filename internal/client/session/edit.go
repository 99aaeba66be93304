package session

import (
	"context"
	"fmt"

	"github.com/milavault/milavault/internal/client/draft"
	"github.com/milavault/milavault/internal/client/models"
)

// Edit is the structured-field edit state machine. It is either idle or
// editing exactly one record; starting an edit while another is active
// first autosaves the old one, and only proceeds if that commit succeeds.
type Edit struct {
	drafts *draft.Store
	notes  *Notes
	sync   Saver

	activeID string
	data     models.Attributes
	noteText string
}

func NewEdit(drafts *draft.Store, notes *Notes, sync Saver) *Edit {
	return &Edit{drafts: drafts, notes: notes, sync: sync}
}

// Active reports the record currently being edited, if any.
func (e *Edit) Active() (string, bool) {
	return e.activeID, e.activeID != ""
}

// Data returns the working copy of the structured fields.
func (e *Edit) Data() models.Attributes {
	return e.data
}

// NoteText returns the notes value the session would commit.
func (e *Edit) NoteText() string {
	return e.noteText
}

// Start begins editing p. If another record is being edited, its pending
// changes are autosaved first; a failed autosave aborts the switch and
// the old session stays active. The working copy is seeded from the edit
// draft when one exists, else from the record itself; the notes value
// always comes from the notes-draft reconciliation.
func (e *Edit) Start(ctx context.Context, p models.Person) error {
	if e.activeID == p.ID {
		return nil
	}
	if e.activeID != "" {
		if err := e.autoCommit(ctx); err != nil {
			return err
		}
	}

	if d, ok := e.drafts.Edit(p.ID); ok {
		e.data = d
	} else {
		e.data = p.Attributes()
	}
	if n, ok := e.drafts.Note(p.ID); ok {
		e.noteText = n
	} else {
		e.noteText = p.Notes
	}
	e.activeID = p.ID
	return nil
}

// SetField updates one structured field of the working copy and writes
// the snapshot through to the edit-draft namespace.
func (e *Edit) SetField(ctx context.Context, field, value string) error {
	if e.activeID == "" {
		return ErrNoActiveEdit
	}

	switch field {
	case "name":
		e.data.Name = value
	case "contact":
		e.data.Contact = value
	case "email":
		e.data.Email = value
	case "address":
		e.data.Address = value
	case "social_facebook":
		e.data.SocialFacebook = value
	case "social_instagram":
		e.data.SocialInstagram = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	e.drafts.SetEdit(ctx, e.activeID, e.data)
	return nil
}

// Commit sends the working copy to the store. On success the edit draft
// and any notes draft for the record are cleared and the session goes
// idle; on any failure the session and drafts are left as they were.
func (e *Edit) Commit(ctx context.Context) error {
	if e.activeID == "" {
		return ErrNoActiveEdit
	}

	if err := e.sync.Update(ctx, e.activeID, e.data, e.noteText); err != nil {
		return err
	}

	e.finish(ctx)
	return nil
}

// autoCommit is Commit triggered by a target switch. The payload prefers
// the persisted draft over the working copy.
func (e *Edit) autoCommit(ctx context.Context) error {
	attrs := e.data
	if d, ok := e.drafts.Edit(e.activeID); ok {
		attrs = d
	}

	if err := e.sync.Autosave(ctx, e.activeID, attrs, e.noteText); err != nil {
		return err
	}

	e.finish(ctx)
	return nil
}

// Cancel discards the working copy and its edit draft without touching
// the remote store.
func (e *Edit) Cancel(ctx context.Context) error {
	if e.activeID == "" {
		return ErrNoActiveEdit
	}

	e.drafts.DeleteEdit(ctx, e.activeID)
	e.reset()
	return nil
}

// Delete removes the record. If it is the active edit target the session
// is cancelled first, so a successful delete always leaves the session
// idle with no draft behind.
func (e *Edit) Delete(ctx context.Context, id string) error {
	if e.activeID == id {
		_ = e.Cancel(ctx)
	}

	if err := e.sync.Delete(ctx, id); err != nil {
		return err
	}

	e.notes.Collapse(id)
	return nil
}

func (e *Edit) finish(ctx context.Context) {
	id := e.activeID
	e.drafts.DeleteEdit(ctx, id)
	e.notes.Forget(ctx, id)
	e.reset()
}

func (e *Edit) reset() {
	e.activeID = ""
	e.data = models.Attributes{}
	e.noteText = ""
}
