package ports

import (
	"context"
	"time"
)

// SessionStore tracks live session ids so that a logout revokes a token
// before it expires.
type SessionStore interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	// Lookup returns the account id bound to sessionID or domain.ErrSessionNotFound.
	Lookup(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
