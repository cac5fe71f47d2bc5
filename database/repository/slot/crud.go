// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"praxia/models"
)

func (r *mongoSlotRepo) EnableBucket(ctx context.Context, slot *models.Slot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}

	// Conditional upsert keyed on the (date, timeSlot, professionalId) triple:
	// concurrent double-submission cannot create a duplicate bucket, and an
	// already-enabled bucket is left untouched.
	filter := bson.M{
		"date":           slot.Date,
		"timeSlot":       slot.TimeSlot,
		"professionalId": slot.ProfessionalID,
	}
	update := bson.M{"$setOnInsert": slot}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *mongoSlotRepo) FindOpen(ctx context.Context, date, timeSlot, professionalID string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// "Unreserved AND unblocked" must be one filter, not two checks.
	filter := bson.M{
		"date":           date,
		"timeSlot":       timeSlot,
		"professionalId": professionalID,
		"occupantId":     nil,
		"isBlocked":      false,
	}
	var slot models.Slot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) Reserve(ctx context.Context, date, timeSlot, professionalID, occupantID string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Single conditional update: the occupant is set only if the slot is
	// still unreserved and not blocked. Losing a race surfaces as
	// mongo.ErrNoDocuments, never as a double booking.
	filter := bson.M{
		"date":           date,
		"timeSlot":       timeSlot,
		"professionalId": professionalID,
		"occupantId":     nil,
		"isBlocked":      false,
	}
	update := bson.M{"$set": bson.M{"occupantId": occupantID}}

	var updated models.Slot
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoSlotRepo) GetAll(ctx context.Context) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetByDate(ctx context.Context, date, professionalID string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "professionalId": professionalID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoSlotRepo) SetBlocked(ctx context.Context, date, timeSlot, professionalID string, blocked bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "timeSlot": timeSlot, "professionalId": professionalID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"isBlocked": blocked}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
