// File: database/repository/publication/interface.go
package publicationRepo

import (
	"context"

	"praxia/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PublicationRepository defines data access for authored publications.
type PublicationRepository interface {
	Create(ctx context.Context, pub *models.Publication) error
	GetByID(ctx context.Context, id string) (*models.Publication, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Publication, error)
	UpdateMeta(ctx context.Context, id, title, language, abstract string) error
	SetStatus(ctx context.Context, id, status string) error
	UpsertSection(ctx context.Context, id string, section models.Section) error
	RemoveSection(ctx context.Context, id, sectionID string) error
	AddReference(ctx context.Context, id string, ref models.Reference) error
	RemoveReference(ctx context.Context, id, refID string) error
	Delete(ctx context.Context, id string) error
}

type mongoPublicationRepo struct {
	coll *mongo.Collection
}

// NewMongoPublicationRepo constructs a new MongoDB PublicationRepository.
func NewMongoPublicationRepo(db *mongo.Database) PublicationRepository {
	return &mongoPublicationRepo{
		coll: db.Collection("publications"),
	}
}
