// File: database/repository/publication/crud.go
package publicationRepo

import (
	"context"
	"fmt"
	"time"

	"praxia/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoPublicationRepo) Create(ctx context.Context, pub *models.Publication) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pub.ID == "" {
		pub.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	pub.CreatedAt = now
	pub.UpdatedAt = now
	if pub.Status == "" {
		pub.Status = models.PublicationDraft
	}
	if pub.Sections == nil {
		pub.Sections = []models.Section{}
	}
	if pub.References == nil {
		pub.References = []models.Reference{}
	}

	if _, err := r.coll.InsertOne(ctx, pub); err != nil {
		return fmt.Errorf("failed to create publication: %w", err)
	}
	return nil
}

func (r *mongoPublicationRepo) GetByID(ctx context.Context, id string) (*models.Publication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pub models.Publication
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (r *mongoPublicationRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Publication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch publications for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var pubs []models.Publication
	if err := cursor.All(ctx, &pubs); err != nil {
		return nil, fmt.Errorf("failed to decode publications: %w", err)
	}
	return pubs, nil
}

func (r *mongoPublicationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete publication with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
