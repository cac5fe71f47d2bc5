// File: services/user/service.go
package user

import (
	"fmt"
	"strings"

	"praxia/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new ordinary user account.
func (s *DefaultUserService) Register(req models.RegisterUserRequest) (*models.AuthUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(req models.AuthUserRequest) (*models.AuthUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	usr, err := s.Repo.GetByEmail(email)
	if err != nil || usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(usr)
}

// GetUserByID fetches one user profile.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("user %s not found: %w", id, err)
	}
	return usr, nil
}

// ListUsers returns every account. Exposed to administrators only.
func (s *DefaultUserService) ListUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// GetUserByEmail fetches one user profile by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("user with email %s not found: %w", email, err)
	}
	return usr, nil
}
