// File: services/publication/service.go
package publication

import (
	"context"
	"fmt"
	"strings"

	"praxia/models"

	"github.com/google/uuid"
)

// Create starts a new draft owned by the actor.
func (s *DefaultPublicationService) Create(ctx context.Context, ownerID string, req models.CreatePublicationRequest) (*models.Publication, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	pub := &models.Publication{
		OwnerID:  ownerID,
		Title:    strings.TrimSpace(req.Title),
		Language: req.Language,
		Abstract: req.Abstract,
		Status:   models.PublicationDraft,
	}
	if err := s.Repo.Create(ctx, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// authorize fetches the publication and verifies the actor may touch it:
// the owner always may, an admin may read and moderate.
func (s *DefaultPublicationService) authorize(ctx context.Context, actorID, pubID string) (*models.Publication, error) {
	pub, err := s.Repo.GetByID(ctx, pubID)
	if err != nil {
		return nil, fmt.Errorf("publication %s not found: %w", pubID, err)
	}
	if pub.OwnerID == actorID {
		return pub, nil
	}
	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil || !actor.IsAdmin() {
		return nil, fmt.Errorf("actor %s may not access publication %s", actorID, pubID)
	}
	return pub, nil
}

// Get returns one publication for its owner or an admin.
func (s *DefaultPublicationService) Get(ctx context.Context, actorID, pubID string) (*models.Publication, error) {
	return s.authorize(ctx, actorID, pubID)
}

// ListByOwner returns the actor's own publications.
func (s *DefaultPublicationService) ListByOwner(ctx context.Context, ownerID string) ([]models.Publication, error) {
	return s.Repo.GetByOwner(ctx, ownerID)
}

// UpdateMeta replaces title, language and abstract.
func (s *DefaultPublicationService) UpdateMeta(ctx context.Context, actorID, pubID, title, language, abstract string) error {
	if _, err := s.authorize(ctx, actorID, pubID); err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return s.Repo.UpdateMeta(ctx, pubID, strings.TrimSpace(title), language, abstract)
}

// UpsertSection creates or replaces one section of the document.
func (s *DefaultPublicationService) UpsertSection(ctx context.Context, actorID, pubID string, req models.UpsertSectionRequest) (*models.Section, error) {
	if _, err := s.authorize(ctx, actorID, pubID); err != nil {
		return nil, err
	}
	section := models.Section{
		ID:      req.ID,
		Heading: strings.TrimSpace(req.Heading),
		Body:    req.Body,
		Order:   req.Order,
	}
	if section.Heading == "" {
		return nil, fmt.Errorf("section heading is required")
	}
	if section.ID == "" {
		section.ID = uuid.New().String()
	}
	if err := s.Repo.UpsertSection(ctx, pubID, section); err != nil {
		return nil, err
	}
	return &section, nil
}

// RemoveSection deletes one section.
func (s *DefaultPublicationService) RemoveSection(ctx context.Context, actorID, pubID, sectionID string) error {
	if _, err := s.authorize(ctx, actorID, pubID); err != nil {
		return err
	}
	return s.Repo.RemoveSection(ctx, pubID, sectionID)
}

// AddReference appends a citation to the reference list.
func (s *DefaultPublicationService) AddReference(ctx context.Context, actorID, pubID string, req models.AddReferenceRequest) (*models.Reference, error) {
	if _, err := s.authorize(ctx, actorID, pubID); err != nil {
		return nil, err
	}
	ref := models.Reference{
		ID:       uuid.New().String(),
		Citation: strings.TrimSpace(req.Citation),
		URL:      req.URL,
	}
	if ref.Citation == "" {
		return nil, fmt.Errorf("citation is required")
	}
	if err := s.Repo.AddReference(ctx, pubID, ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// RemoveReference deletes one citation.
func (s *DefaultPublicationService) RemoveReference(ctx context.Context, actorID, pubID, refID string) error {
	if _, err := s.authorize(ctx, actorID, pubID); err != nil {
		return err
	}
	return s.Repo.RemoveReference(ctx, pubID, refID)
}

// Finalize marks the publication as final. Finalized documents keep their
// content; the status drives read-only behavior in clients.
func (s *DefaultPublicationService) Finalize(ctx context.Context, actorID, pubID string) error {
	pub, err := s.authorize(ctx, actorID, pubID)
	if err != nil {
		return err
	}
	if pub.Status == models.PublicationFinal {
		return nil
	}
	return s.Repo.SetStatus(ctx, pubID, models.PublicationFinal)
}
