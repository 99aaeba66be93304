// Package draft implements the durable per-record draft cache: a pair of
// in-memory mappings (notes drafts and structured-field edit drafts)
// written through to local storage on every mutation.
//
// The in-memory side is the source of truth for unsaved work. Durable
// writes are best effort: a persistence failure is logged and never rolls
// back the mapping.
package draft

import (
	"context"
	"encoding/json"

	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/client/repositories/drafts"
	"github.com/milavault/milavault/internal/logging"
)

const (
	notesNamespace = "notes"
	editsNamespace = "edits"
)

type Store struct {
	repo   drafts.Repository
	logger logging.Logger
	notes  map[string]string
	edits  map[string]models.Attributes
}

// NewStore hydrates both namespaces from durable storage. A row that
// cannot be decoded is treated as absent; a failed read leaves the
// namespace empty. Neither is fatal.
func NewStore(ctx context.Context, repo drafts.Repository, logger logging.Logger) *Store {
	s := &Store{
		repo:   repo,
		logger: logger.With("module", "draft_store"),
		notes:  make(map[string]string),
		edits:  make(map[string]models.Attributes),
	}

	noteRows, err := repo.ListNamespace(ctx, notesNamespace)
	if err != nil {
		s.logger.Warn(ctx, "failed to load note drafts", "error", err)
	}
	for id, value := range noteRows {
		s.notes[id] = string(value)
	}

	editRows, err := repo.ListNamespace(ctx, editsNamespace)
	if err != nil {
		s.logger.Warn(ctx, "failed to load edit drafts", "error", err)
	}
	for id, value := range editRows {
		var a models.Attributes
		if err := json.Unmarshal(value, &a); err != nil {
			s.logger.Warn(ctx, "discarding unreadable edit draft", "id", id, "error", err)
			continue
		}
		s.edits[id] = a
	}

	return s
}

// Note returns the draft notes text for the record, if any.
func (s *Store) Note(id string) (string, bool) {
	v, ok := s.notes[id]
	return v, ok
}

// SetNote records unsaved notes text for the record.
func (s *Store) SetNote(ctx context.Context, id, value string) {
	s.notes[id] = value
	if err := s.repo.Set(ctx, notesNamespace, id, []byte(value)); err != nil {
		s.logger.Warn(ctx, "failed to persist note draft", "id", id, "error", err)
	}
}

// DeleteNote discards the notes draft for the record.
func (s *Store) DeleteNote(ctx context.Context, id string) {
	delete(s.notes, id)
	if err := s.repo.Delete(ctx, notesNamespace, id); err != nil {
		s.logger.Warn(ctx, "failed to delete note draft", "id", id, "error", err)
	}
}

// Edit returns the structured-field draft for the record, if any.
func (s *Store) Edit(id string) (models.Attributes, bool) {
	a, ok := s.edits[id]
	return a, ok
}

// SetEdit records an unsaved structured-field snapshot for the record.
func (s *Store) SetEdit(ctx context.Context, id string, a models.Attributes) {
	s.edits[id] = a
	value, err := json.Marshal(a)
	if err != nil {
		s.logger.Warn(ctx, "failed to encode edit draft", "id", id, "error", err)
		return
	}
	if err := s.repo.Set(ctx, editsNamespace, id, value); err != nil {
		s.logger.Warn(ctx, "failed to persist edit draft", "id", id, "error", err)
	}
}

// DeleteEdit discards the structured-field draft for the record.
func (s *Store) DeleteEdit(ctx context.Context, id string) {
	delete(s.edits, id)
	if err := s.repo.Delete(ctx, editsNamespace, id); err != nil {
		s.logger.Warn(ctx, "failed to delete edit draft", "id", id, "error", err)
	}
}
