// File: services/user/interface.go
package user

import (
	"praxia/models"

	userRepo "praxia/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// UserService defines registration, authentication and profile lookups.
type UserService interface {
	Register(req models.RegisterUserRequest) (*models.AuthUserResponse, error)
	Authenticate(req models.AuthUserRequest) (*models.AuthUserResponse, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	RevokeAuthToken(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
