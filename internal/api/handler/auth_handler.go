package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/hospital-booking/internal/api/metrics"
	"github.com/carepoint/hospital-booking/internal/api/middleware"
	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// Home sends the browser to the login page.
//
// @Summary      Landing page
// @Tags         auth
// @Success      302
// @Router       / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// LoginForm renders the login page.
//
// @Summary      Login page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return render(c, http.StatusOK, viewLogin, nil)
}

// Login checks the submitted credentials and starts a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      401  {object}  viewResponse
// @Failure      429  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			return render(c, http.StatusUnauthorized, viewLogin, nil, msgLoginFailed)
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("succeeded").Inc()
	middleware.SetSessionCookie(c, res.Token, res.Principal.ExpiresAt, h.secureCookies)
	return c.Redirect(http.StatusFound, res.Principal.Role.LandingPath())
}

// SignupForm renders the signup page.
//
// @Summary      Signup page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /signup [get]
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return render(c, http.StatusOK, viewSignup, nil)
}

// Signup creates a customer or hospital account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true   "Username"
// @Param        password  formData  string  true   "Password"
// @Param        role      formData  string  true   "customer or hospital"
// @Param        passkey   formData  string  false  "Required for hospital accounts"
// @Success      302
// @Failure      429  {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	role := roleLabel(req.Role)

	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues(role, "invalid").Inc()
		return redirectWithFlash(c, "/signup", err.Error())
	}

	_, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Passkey:  req.Passkey,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		metrics.SignupsTotal.WithLabelValues(role, "duplicate").Inc()
		return redirectWithFlash(c, middleware.LoginPath, msgUsernameTaken)
	case errors.Is(err, domain.ErrInvalidPasskey):
		metrics.SignupsTotal.WithLabelValues(role, "invalid_passkey").Inc()
		return redirectWithFlash(c, "/signup", msgInvalidPasskey)
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.SignupsTotal.WithLabelValues(role, "invalid").Inc()
		return redirectWithFlash(c, "/signup", "username and password are required")
	case err != nil:
		return err
	}

	metrics.SignupsTotal.WithLabelValues(role, "created").Inc()
	return redirectWithFlash(c, middleware.LoginPath, msgSignupSucceeded)
}

// Logout revokes the session and clears the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	middleware.ClearSessionCookie(c, h.secureCookies)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// roleLabel bounds the metric label to known roles.
func roleLabel(role string) string {
	if r := domain.Role(role); r.Valid() {
		return role
	}
	return "unknown"
}
