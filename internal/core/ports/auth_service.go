package ports

import (
	"context"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// SignupInput carries the signup form.
type SignupInput struct {
	Username string
	Password string
	Role     string
	Passkey  string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	Principal *domain.Principal
}

// Authenticator resolves a session token into a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

type AuthService interface {
	Authenticator
	Signup(ctx context.Context, input SignupInput) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}
