package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type fakeMongo struct{ err error }

func (f fakeMongo) Ping(ctx context.Context, rp *readpref.ReadPref) error { return f.err }

func newHealthClients(t *testing.T) (*redis.Client, *redis.Client) {
	t.Helper()
	cache := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})
	sessions := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})
	return cache, sessions
}

func TestStartHealthMonitorChecksImmediately(t *testing.T) {
	cache, sessions := newHealthClients(t)

	StartHealthMonitor(cache, sessions, fakeMongo{})

	got := GetHealthStatus()
	assert.False(t, got.CheckedAt.IsZero(), "snapshot should be populated before the first tick")
	assert.True(t, got.Mongo)
	assert.True(t, got.Cache)
	assert.True(t, got.Sessions)
	assert.True(t, got.Healthy())
}

func TestRefreshHealthReportsStoreFailures(t *testing.T) {
	cache, _ := newHealthClients(t)

	down := miniredis.RunT(t)
	sessions := redis.NewClient(&redis.Options{Addr: down.Addr()})
	down.Close()

	refreshHealth(cache, sessions, fakeMongo{err: context.DeadlineExceeded})

	got := GetHealthStatus()
	assert.False(t, got.Mongo)
	assert.True(t, got.Cache)
	assert.False(t, got.Sessions)
	assert.False(t, got.Healthy())
}
