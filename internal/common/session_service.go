package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id does not resolve,
// either because it never existed or because it expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionData is the authenticated student bound to a session id.
type SessionData struct {
	SessionID string    `json:"session_id"`
	USN       string    `json:"usn"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore abstracts session persistence so handlers never touch a
// framework session object directly.
type SessionStore interface {
	Create(ctx context.Context, usn, name, email string) (string, error)
	Resolve(ctx context.Context, sessionID string) (*SessionData, error)
	Destroy(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis under session:<uuid> with an
// absolute TTL. There is no sliding renewal.
type RedisSessionStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(redis *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{redis: redis, ttl: ttl}
}

func (s *RedisSessionStore) Create(ctx context.Context, usn, name, email string) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	session := SessionData{
		SessionID: sessionID,
		USN:       usn,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return sessionID, nil
}

func (s *RedisSessionStore) Resolve(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// The Redis TTL should already have evicted this, but the absolute
	// expiry is authoritative.
	if time.Now().After(session.ExpiresAt) {
		_ = s.Destroy(ctx, sessionID)
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}
