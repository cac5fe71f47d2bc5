// File: services/publication/interface.go
package publication

import (
	"context"

	publicationRepo "praxia/database/repository/publication"
	userRepo "praxia/database/repository/user"
	"praxia/models"
	"praxia/services/intelligence"
)

// PublicationService manages authored scientific documents: drafting,
// section assembly, references, AI suggestions and export.
type PublicationService interface {
	Create(ctx context.Context, ownerID string, req models.CreatePublicationRequest) (*models.Publication, error)
	Get(ctx context.Context, actorID, pubID string) (*models.Publication, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Publication, error)
	UpdateMeta(ctx context.Context, actorID, pubID, title, language, abstract string) error
	UpsertSection(ctx context.Context, actorID, pubID string, req models.UpsertSectionRequest) (*models.Section, error)
	RemoveSection(ctx context.Context, actorID, pubID, sectionID string) error
	AddReference(ctx context.Context, actorID, pubID string, req models.AddReferenceRequest) (*models.Reference, error)
	RemoveReference(ctx context.Context, actorID, pubID, refID string) error
	Finalize(ctx context.Context, actorID, pubID string) error
	DraftSection(ctx context.Context, actorID, pubID string, req models.DraftSectionRequest) (string, error)
	Export(ctx context.Context, actorID, pubID, format string) (string, error)
}

// DefaultPublicationService is the production implementation.
type DefaultPublicationService struct {
	Repo      publicationRepo.PublicationRepository
	Users     userRepo.UserRepository
	Generator intelligence.TextGenerator
}
