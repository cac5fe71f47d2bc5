// File: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
func (r *mongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on slot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One document per (date, timeSlot, professionalId) triple; backs the
		// idempotent enable upsert.
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
				{Key: "timeSlot", Value: 1},
				{Key: "professionalId", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_date_bucket_professional"),
		},
		// Reservation lookup: open slots for a bucket.
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
				{Key: "occupantId", Value: 1},
				{Key: "isBlocked", Value: 1},
			},
			Options: options.Index().SetName("date_open_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
