package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

// Session state values. A session is created in the authenticated state at
// login and deleted at logout; there is no stored anonymous session.
const (
	SessionAuthenticated = "authenticated"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// Session is the explicit per-login session record, keyed by the SHA-256
// hash of the bearer token. It replaces the ambient current-doctor pointer
// the original client kept in shared storage.
type Session struct {
	DoctorID   string    `json:"doctorId"`
	Email      string    `json:"email"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

// SessionStore persists sessions in Redis with a sliding TTL. It is
// constructed once at the composition root and injected wherever session
// access is needed.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSessionStore returns a store over the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

// Save writes the session under the token hash.
func (s *SessionStore) Save(ctx context.Context, tokenHash string, sess Session) error {
	sess.LastSeenAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionPrefix+tokenHash, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get retrieves the session for a token hash.
func (s *SessionStore) Get(ctx context.Context, tokenHash string) (*Session, error) {
	data, err := s.Client.Get(ctx, sessionPrefix+tokenHash).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Touch refreshes the session TTL and LastSeenAt on activity.
func (s *SessionStore) Touch(ctx context.Context, tokenHash string) error {
	sess, err := s.Get(ctx, tokenHash)
	if err != nil {
		return err
	}
	return s.Save(ctx, tokenHash, *sess)
}

// Delete removes a session, returning the doctor to the anonymous state.
func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.Client.Del(ctx, sessionPrefix+tokenHash).Err()
}
