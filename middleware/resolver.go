// File: middleware/resolver.go
package middleware

import (
	"context"
	"errors"
	"time"

	userRepo "praxia/database/repository/user"
	"praxia/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

// ActorResolver turns a bearer token into a stable actor ID. One
// implementation exists per identity provider; routes pick whichever their
// deployment is configured for, so the rest of the system only ever sees
// the interface.
type ActorResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// JWTResolver validates first-party HS256 tokens. The token hash must match
// the user's current session: checked in Redis first, falling back to the
// user document on a cache miss.
type JWTResolver struct {
	Users userRepo.UserRepository
	Cache *redis.Client
}

func (r *JWTResolver) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := utils.ExtractIDFromToken(token)
	if err != nil || userID == "" {
		return "", errors.New("invalid token")
	}

	computedHash := utils.HashToken(token)
	cacheKey := utils.AuthCachePrefix + userID

	if r.Cache != nil {
		cachedHash, err := r.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				return "", errors.New("token mismatch")
			}
			_ = r.Cache.Expire(ctx, cacheKey, time.Hour).Err()
			return userID, nil
		}
		if err != redis.Nil {
			utils.GetLogger().Sugar().Warnf("auth cache read failed, falling back to DB: %v", err)
		}
	}

	proj := bson.M{"id": 1, "tokenHash": 1}
	usr, err := r.Users.GetByIDWithProjection(userID, proj)
	if err != nil || usr == nil {
		return "", errors.New("authentication error")
	}
	if usr.TokenHash == "" || usr.TokenHash != computedHash {
		return "", errors.New("token mismatch")
	}

	if r.Cache != nil {
		_ = r.Cache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
	}
	return userID, nil
}

// FirebaseResolver verifies Firebase ID tokens and uses the Firebase UID as
// the actor ID.
type FirebaseResolver struct {
	Auth *auth.Client
}

func (r *FirebaseResolver) Resolve(ctx context.Context, token string) (string, error) {
	decoded, err := r.Auth.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.New("invalid token")
	}
	return decoded.UID, nil
}
