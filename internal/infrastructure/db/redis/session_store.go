package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// SessionStore keeps live session ids so a signed-out token stops working
// before its expiry.
// Key format: session:<session_id> -> account id
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save binds sessionID to accountID until ttl elapses.
func (s *SessionStore) Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// AccountID returns the account bound to sessionID, or domain.ErrNoSession
// when the session was signed out or has expired.
func (s *SessionStore) AccountID(ctx context.Context, sessionID string) (string, error) {
	id, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoSession
		}
		return "", fmt.Errorf("load session: %w", err)
	}
	return id, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}
