package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of the service's backing dependencies: the
// booking database plus each logical Redis DB (wizard sessions, auth cache,
// quick-book drafts, notification queue).
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
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

// StartHealthMonitor checks the named Redis clients and the Mongo client once
// immediately and then every minute, until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	check := func() {
		redisHealth := make(map[string]bool, len(redisClients))
		healthy := true

		for name, client := range redisClients {
			ok := client.Ping(ctx).Err() == nil
			redisHealth[name] = ok
			healthy = healthy && ok
		}

		mongoHealthy := mongoClient.Ping(ctx, nil) == nil
		healthy = healthy && mongoHealthy

		healthMu.Lock()
		currentHealth = HealthStatus{
			Healthy:   healthy,
			Mongo:     mongoHealthy,
			Redis:     redisHealth,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		check()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
