package utils

import (
	"context"
	"sync"
	"time"

	"asclepius/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// HealthStatus is the latest availability snapshot of the stores the
// clinic backend depends on: the record database, the redis cache, and
// the redis instance holding doctor sessions.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	Sessions  bool      `json:"sessions"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every backing store answered the last probe.
func (s HealthStatus) Healthy() bool {
	return s.Mongo && s.Cache && s.Sessions
}

// MongoPinger is the subset of *mongo.Client the monitor uses.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
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

func refreshHealth(cache, sessions *redis.Client, db MongoPinger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     db.Ping(ctx, nil) == nil,
		Cache:     cache.Ping(ctx).Err() == nil,
		Sessions:  sessions.Ping(ctx).Err() == nil,
		CheckedAt: time.Now(),
	}
	if !status.Healthy() {
		GetLogger().Warn("backing store health check failed",
			zap.Bool("mongo", status.Mongo),
			zap.Bool("cache", status.Cache),
			zap.Bool("sessions", status.Sessions))
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor probes the backing stores once before returning,
// so the readiness endpoint is accurate from startup, then keeps the
// snapshot fresh on the configured interval.
func StartHealthMonitor(cache, sessions *redis.Client, db MongoPinger) {
	refreshHealth(cache, sessions, db)

	interval := time.Duration(config.AppConfig.HealthCheckIntervalSec) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			refreshHealth(cache, sessions, db)
		}
	}()
}
