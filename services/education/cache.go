// File: services/education/cache.go
package education

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	chatCachePrefix = "chat:"
	chatCacheWindow = 100
	chatCacheTTL    = 10 * time.Minute
)

// ChatCache holds the recent tail of each course chat so pollers do not hit
// the primary store on every interval. The cache is an accelerator: it may
// lag or expire, and readers must treat an incomplete window as a miss.
type ChatCache interface {
	// Push appends one encoded message to the course window.
	Push(ctx context.Context, courseID string, payload []byte) error
	// Window returns the cached window, oldest first.
	Window(ctx context.Context, courseID string) ([]string, error)
}

// RedisChatCache keeps each course window in a capped Redis list.
type RedisChatCache struct {
	Client *redis.Client
}

// NewRedisChatCache wraps a Redis client as a ChatCache.
func NewRedisChatCache(client *redis.Client) *RedisChatCache {
	return &RedisChatCache{Client: client}
}

func (c *RedisChatCache) Push(ctx context.Context, courseID string, payload []byte) error {
	key := chatCachePrefix + courseID
	pipe := c.Client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -chatCacheWindow, -1)
	pipe.Expire(ctx, key, chatCacheTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisChatCache) Window(ctx context.Context, courseID string) ([]string, error) {
	return c.Client.LRange(ctx, chatCachePrefix+courseID, 0, -1).Result()
}
