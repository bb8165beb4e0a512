package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/hospital-booking/internal/api/middleware"
	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

type stubAuthService struct {
	signupFn       func(ctx context.Context, in ports.SignupInput) (*domain.Account, error)
	loginFn        func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	logoutFn       func(ctx context.Context, token string) error
	authenticateFn func(ctx context.Context, token string) (*domain.Principal, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Account, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	return s.authenticateFn(ctx, token)
}

type stubBookingService struct {
	listHospitalsFn      func(ctx context.Context) ([]*domain.Account, error)
	hospitalForBookingFn func(ctx context.Context, hospitalID string) (*domain.Account, error)
	confirmFn            func(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error)
	listForHospitalFn    func(ctx context.Context, hospitalID string) ([]*domain.Booking, error)
}

func (s *stubBookingService) ListHospitals(ctx context.Context) ([]*domain.Account, error) {
	return s.listHospitalsFn(ctx)
}

func (s *stubBookingService) HospitalForBooking(ctx context.Context, hospitalID string) (*domain.Account, error) {
	return s.hospitalForBookingFn(ctx, hospitalID)
}

func (s *stubBookingService) Confirm(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
	return s.confirmFn(ctx, in)
}

func (s *stubBookingService) ListForHospital(ctx context.Context, hospitalID string) ([]*domain.Booking, error) {
	return s.listForHospitalFn(ctx, hospitalID)
}

// newFormContext builds a context for a form submission. A nil form sends no body.
func newFormContext(method, target string, form url.Values, principal *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(middleware.PrincipalKey, principal)
	}
	return c, rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) viewResponse {
	t.Helper()
	var resp viewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

// flashesFrom decodes the flash cookie set on the response.
func flashesFrom(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name != flashCookie {
			continue
		}
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(ck)
		return readFlashes(e.NewContext(req, httptest.NewRecorder()))
	}
	return nil
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %s, got %q", location, got)
	}
}
