package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/hospital-booking/internal/api/middleware"
	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// ctxPrincipal returns the principal injected by the Session middleware.
// Routes using it sit behind RequireRole or RequireLogin, so a missing
// principal means the route was wired without its guard.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return p, nil
}
