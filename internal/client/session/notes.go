package session

import (
	"context"

	"github.com/milavault/milavault/internal/client/draft"
	"github.com/milavault/milavault/internal/client/models"
)

// Notes is the per-record notes session: at most one panel open at a
// time, with the draft mapping itself serving as the dirty flag.
type Notes struct {
	drafts *draft.Store
	sync   NoteSaver

	expandedID string
}

func NewNotes(drafts *draft.Store, sync NoteSaver) *Notes {
	return &Notes{drafts: drafts, sync: sync}
}

// Expanded reports which record's panel is open, if any.
func (n *Notes) Expanded() (string, bool) {
	return n.expandedID, n.expandedID != ""
}

// Toggle opens or closes the notes panel for p. Opening seeds the draft
// from the stored notes only when no draft exists yet, so reopening a
// panel never overwrites unsaved text. Closing keeps the draft.
func (n *Notes) Toggle(ctx context.Context, p models.Person) {
	if n.expandedID == p.ID {
		n.expandedID = ""
		return
	}
	if _, ok := n.drafts.Note(p.ID); !ok {
		n.drafts.SetNote(ctx, p.ID, p.Notes)
	}
	n.expandedID = p.ID
}

// SetDraft records the latest unsaved notes text for the record.
func (n *Notes) SetDraft(ctx context.Context, id, value string) {
	n.drafts.SetNote(ctx, id, value)
}

// Draft returns the live notes value for p: the draft if present, else
// the stored attribute.
func (n *Notes) Draft(p models.Person) string {
	if v, ok := n.drafts.Note(p.ID); ok {
		return v
	}
	return p.Notes
}

// Save commits the notes draft for p. With no draft present there is
// nothing unsaved and the call is a no-op, which makes an accidental
// double save harmless. On success the draft is cleared and the panel
// closes; on failure both are retained for retry.
func (n *Notes) Save(ctx context.Context, p models.Person) error {
	value, ok := n.drafts.Note(p.ID)
	if !ok {
		n.Collapse(p.ID)
		return nil
	}

	if err := n.sync.SaveNote(ctx, p.ID, value); err != nil {
		return err
	}

	n.drafts.DeleteNote(ctx, p.ID)
	n.Collapse(p.ID)
	return nil
}

// Forget drops the draft and closes the panel for the record.
func (n *Notes) Forget(ctx context.Context, id string) {
	n.drafts.DeleteNote(ctx, id)
	n.Collapse(id)
}

// Collapse closes the panel if it is open on the record.
func (n *Notes) Collapse(id string) {
	if n.expandedID == id {
		n.expandedID = ""
	}
}
