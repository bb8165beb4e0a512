package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"
	// PrincipalKey is the echo.Context key the principal is stored under.
	PrincipalKey = "principal"
	// LoginPath is where unauthenticated or mis-scoped requests are sent.
	LoginPath = "/login"
)

// Session resolves the session cookie, when present, and injects the
// principal into context. It never rejects a request: guards further down
// decide what an anonymous request may reach.
func Session(auth ports.Authenticator, secureCookies bool, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			principal, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrInvalidCredential) && !errors.Is(err, domain.ErrNotFound) {
					log.Error().Err(err).Str("path", c.Path()).Msg("session resolution failed")
				}
				ClearSessionCookie(c, secureCookies)
				return next(c)
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal injected by Session, if any.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(*domain.Principal)
	return p, ok && p != nil
}

// SetSessionCookie hands the session token to the browser.
func SetSessionCookie(c echo.Context, token string, expires time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie tells the browser to drop the session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
