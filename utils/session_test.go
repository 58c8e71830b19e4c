package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(client, time.Hour), mr
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := Session{
		DoctorID:  "doc-1",
		Email:     "meena@example.com",
		State:     SessionAuthenticated,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, "hash-1", sess))

	got, err := store.Get(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.DoctorID)
	assert.Equal(t, SessionAuthenticated, got.State)
	assert.False(t, got.LastSeenAt.IsZero())
}

func TestSessionStoreMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-hash")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreTouchRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "hash-1", Session{DoctorID: "doc-1", State: SessionAuthenticated}))

	// Age the session to the edge of expiry, then touch it.
	mr.FastForward(59 * time.Minute)
	require.NoError(t, store.Touch(ctx, "hash-1"))
	mr.FastForward(59 * time.Minute)

	got, err := store.Get(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.DoctorID)
}

func TestSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "hash-1", Session{DoctorID: "doc-1"}))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "hash-1", Session{DoctorID: "doc-1"}))
	require.NoError(t, store.Delete(ctx, "hash-1"))

	_, err := store.Get(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
