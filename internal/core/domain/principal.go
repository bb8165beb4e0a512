package domain

import "time"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	AccountID string    `json:"account_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	SessionID string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewPrincipal binds a session to the account it was issued for.
func NewPrincipal(a *Account, sessionID string, expiresAt time.Time) *Principal {
	return &Principal{
		AccountID: a.ID,
		Username:  a.Username,
		Role:      a.Role,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}
}
