// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"praxia/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository defines data access for appointment slots.
type SlotRepository interface {
	// EnableBucket creates the slot document for (date, timeSlot, professionalId)
	// if it does not exist yet, filling in the slot's generated fields (id,
	// createdAt). Returns true when a new document was created, false when
	// the bucket was already enabled.
	EnableBucket(ctx context.Context, slot *models.Slot) (bool, error)
	// FindOpen retrieves the slot for (date, timeSlot, professionalId) only
	// if it is unreserved and not blocked, as a single filter. Returns
	// mongo.ErrNoDocuments otherwise.
	FindOpen(ctx context.Context, date, timeSlot, professionalID string) (*models.Slot, error)
	// Reserve atomically sets the occupant on the slot matching
	// (date, timeSlot, professionalId) provided it is still unreserved and
	// not blocked. Returns mongo.ErrNoDocuments when no such open slot exists.
	Reserve(ctx context.Context, date, timeSlot, professionalID, occupantID string) (*models.Slot, error)
	// GetAll retrieves every slot document.
	GetAll(ctx context.Context) ([]models.Slot, error)
	// GetByDateRange retrieves slots whose date lies in [from, to].
	GetByDateRange(ctx context.Context, from, to string) ([]models.Slot, error)
	// GetByDate retrieves one professional's slots for a single day.
	GetByDate(ctx context.Context, date, professionalID string) ([]models.Slot, error)
	// SetBlocked flips the blocked flag on one bucket.
	SetBlocked(ctx context.Context, date, timeSlot, professionalID string, blocked bool) error
	// EnsureIndexes creates the collection's indexes.
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}
