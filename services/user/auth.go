// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"time"

	"praxia/models"
	"praxia/utils"
)

const tokenTTL = 72 * time.Hour

// issueToken signs a JWT for the user and caches its hash so the auth
// middleware can validate without a database round-trip.
func (s *DefaultUserService) issueToken(usr *models.User) (*models.AuthUserResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	// The token hash is the source of truth for session validity: persisted
	// on the user document, mirrored in Redis for fast middleware checks.
	usr.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		key := utils.AuthCachePrefix + usr.ID
		if err := s.AuthCache.Set(ctx, key, usr.TokenHash, tokenTTL).Err(); err != nil {
			utils.GetLogger().Sugar().Warnf("failed to cache auth token for %s: %v", usr.ID, err)
		}
	}

	return &models.AuthUserResponse{Token: token, User: usr}, nil
}

// RevokeAuthToken clears the stored token hash and its cache entry, forcing
// re-authentication on the next request.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("user %s not found: %w", id, err)
	}
	usr.TokenHash = ""
	if err := s.Repo.Update(usr); err != nil {
		return fmt.Errorf("failed to revoke session for %s: %w", id, err)
	}

	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
			return fmt.Errorf("failed to drop cached token for %s: %w", id, err)
		}
	}
	return nil
}
