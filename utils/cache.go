// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"praxia/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix is the key prefix for cached auth-token hashes.
const AuthCachePrefix = "auth:"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// ChatCacheClient holds the recent-message windows read by chat polling.
	ChatCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	ChatCacheClient = newRedisClient(config.AppConfig.RedisChatDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetChatCacheClient returns the Redis client backing chat polling.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		ChatCacheClient = newRedisClient(config.AppConfig.RedisChatDB)
	}
	return ChatCacheClient
}
