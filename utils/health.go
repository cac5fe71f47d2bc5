package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot served by the health endpoint: the document
// store plus each of the named cache tiers (cache, auth, chat).
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the backing stores once a minute and keeps the
// snapshot the health endpoint serves.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			redisHealth := make(map[string]bool, len(redisClients))
			for name, client := range redisClients {
				redisHealth[name] = client.Ping(ctx).Err() == nil
			}

			snapshot := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
