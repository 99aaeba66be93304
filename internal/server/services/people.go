package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/server/models"
	"github.com/milavault/milavault/internal/server/repositories/people"
)

// PersonService owns the contact CRUD. Every call is scoped by the
// authenticated user's id; the service never sees another owner's rows.
type PersonService struct {
	repo people.Repository
}

func NewPersonService(repo people.Repository) *PersonService {
	return &PersonService{repo: repo}
}

// List returns the user's people ordered by name ascending.
func (s *PersonService) List(ctx context.Context, userID string) ([]models.Person, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing people: %w", err)
	}
	return result, nil
}

// Create validates and stores a new person, returning the assigned id.
func (s *PersonService) Create(ctx context.Context, userID string, p models.Person) (string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", common.ErrValidation
	}

	p.ID = uuid.NewString()
	p.UserID = userID

	if err := s.repo.Insert(ctx, &p); err != nil {
		return "", fmt.Errorf("error creating person: %w", err)
	}
	return p.ID, nil
}

// Update replaces all editable attributes of the person.
func (s *PersonService) Update(ctx context.Context, userID string, p models.Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return common.ErrValidation
	}

	p.UserID = userID

	if err := s.repo.Update(ctx, &p); err != nil {
		return fmt.Errorf("error updating person: %w", err)
	}
	return nil
}

// UpdateNotes replaces only the notes attribute, leaving the structured
// fields untouched.
func (s *PersonService) UpdateNotes(ctx context.Context, userID, id, notes string) error {
	if err := s.repo.UpdateNotes(ctx, id, userID, notes); err != nil {
		return fmt.Errorf("error updating notes: %w", err)
	}
	return nil
}

// Delete removes the person.
func (s *PersonService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting person: %w", err)
	}
	return nil
}
