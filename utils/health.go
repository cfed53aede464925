package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     map[string]bool `json:"redis,omitempty"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings every named client once and stores the result.
func CheckHealth(ctx context.Context, redisClients map[string]*redis.Client) HealthStatus {
	status := HealthStatus{Redis: make(map[string]bool, len(redisClients)), CheckedAt: time.Now()}
	for name, client := range redisClients {
		status.Redis[name] = client.Ping(ctx).Err() == nil
	}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClients map[string]*redis.Client, interval time.Duration) {
	go func() {
		CheckHealth(ctx, redisClients)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClients)
			}
		}
	}()
}
