// File: database/repository/post/interface.go
package postRepo

import (
	"context"

	"praxia/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PostRepository defines data access for board posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetRecent(ctx context.Context, limit int64) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
}

type mongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo constructs a new MongoDB PostRepository.
func NewMongoPostRepo(db *mongo.Database) PostRepository {
	return &mongoPostRepo{
		coll: db.Collection("posts"),
	}
}
