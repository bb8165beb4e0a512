package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// AuthConfig holds the secrets and lifetimes the auth gate runs with.
type AuthConfig struct {
	HospitalPasskey string
	SessionSecret   string
	SessionTTL      time.Duration
}

// AuthService implements signup, login and session resolution.
type AuthService struct {
	accounts   ports.AccountRepository
	sessions   ports.SessionStore
	passkey    []byte
	secret     []byte
	sessionTTL time.Duration
	hashCost   int
	log        zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, cfg AuthConfig, log zerolog.Logger) *AuthService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		passkey:    []byte(cfg.HospitalPasskey),
		secret:     []byte(cfg.SessionSecret),
		sessionTTL: ttl,
		hashCost:   bcrypt.DefaultCost,
		log:        log,
	}
}

// sessionClaims is the payload of the session cookie. Subject is the account id
// and ID is the session id registered in the SessionStore.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// dummyHash is compared against when the username is unknown, so both halves
// of a failed login cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)
	return h
})

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Account, error) {
	username := strings.TrimSpace(in.Username)
	role := domain.Role(in.Role)
	if username == "" || in.Password == "" || !role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	// An existing username wins over a bad passkey. The insert below still
	// relies on the unique index for concurrent signups.
	if _, err := s.accounts.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	if role == domain.RoleHospital && !s.passkeyMatches(in.Passkey) {
		s.log.Warn().Str("username", username).Msg("hospital signup rejected: invalid passkey")
		return nil, domain.ErrInvalidPasskey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.accounts.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Str("role", string(created.Role)).Msg("account created")
	return created, nil
}

// Login trims the username the same way Signup does before looking it up.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredential
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		s.log.Info().Str("username", username).Msg("login failed")
		return nil, domain.ErrInvalidCredential
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("username", username).Msg("login failed")
		return nil, domain.ErrInvalidCredential
	}

	return s.issueSession(ctx, account)
}

// Authenticate resolves a session token into the principal it was issued for.
// The account is re-read so the principal always reflects the stored role.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	accountID, err := s.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if accountID != claims.Subject {
		return nil, domain.ErrInvalidCredential
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return domain.NewPrincipal(account, claims.ID, claims.ExpiresAt.Time), nil
}

// Logout revokes the session behind token. Unparseable or expired tokens have
// nothing left to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Info().Str("account_id", claims.Subject).Msg("session revoked")
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, account *domain.Account) (*ports.LoginResult, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.sessionTTL)
	sessionID := uuid.NewString()

	claims := sessionClaims{
		Username: account.Username,
		Role:     string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	if err := s.sessions.Save(ctx, sessionID, account.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login succeeded")
	return &ports.LoginResult{
		Token:     token,
		Principal: domain.NewPrincipal(account, sessionID, expiresAt),
	}, nil
}

func (s *AuthService) parseToken(raw string) (*sessionClaims, error) {
	if raw == "" {
		return nil, domain.ErrInvalidCredential
	}
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.ID == "" || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidCredential
	}
	return claims, nil
}

func (s *AuthService) passkeyMatches(passkey string) bool {
	if len(s.passkey) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(s.passkey, []byte(passkey)) == 1
}
