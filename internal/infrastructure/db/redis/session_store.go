package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// SessionStore keeps live session ids in Redis. Entries expire with the
// session, so an expired login needs no cleanup.
// Key format: session:<session_id> → account id
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save registers sessionID for accountID until ttl elapses.
func (s *SessionStore) Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sessionID), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Lookup returns the account bound to sessionID.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	accountID, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("session lookup: %w", err)
	}
	return accountID, nil
}

// Delete revokes sessionID. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
