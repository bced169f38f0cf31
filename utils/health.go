package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of the stores the availability
// engine depends on.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	Feed      bool      `json:"feed"`
	CheckedAt time.Time `json:"checkedAt"`
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

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. A degraded feed only means live pushes stop; the pull path keeps
// serving, so degradation is logged but never fatal.
func StartHealthMonitor(interval time.Duration, cache, feed *redis.Client, mongoClient *mongo.Client) {
	go func() {
		logger := GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Cache:     cache.Ping(ctx).Err() == nil,
				Feed:      feed.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			}
			if !status.Mongo || !status.Cache || !status.Feed {
				logger.Warn("dependency health degraded",
					zap.Bool("mongo", status.Mongo),
					zap.Bool("cache", status.Cache),
					zap.Bool("feed", status.Feed))
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
