// File: database/repository/post/crud.go
package postRepo

import (
	"context"
	"fmt"
	"time"

	"praxia/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPostRepo) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *mongoPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var post models.Post
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mongoPostRepo) GetRecent(ctx context.Context, limit int64) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (r *mongoPostRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
