package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// RequireLogin sends anonymous requests to the login page.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := PrincipalFrom(c); !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control. A principal with another
// role is redirected to the login page rather than refused with 403.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			if _, ok := allowed[p.Role]; !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}
