// File: database/repository/user/interface.go
package userRepo

import (
	"praxia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// EnsureIndexes creates the collection's indexes.
	EnsureIndexes() error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
