package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/carepoint/hospital-booking/docs"
	"github.com/carepoint/hospital-booking/internal/api/handler"
	"github.com/carepoint/hospital-booking/internal/api/middleware"
	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
	"github.com/carepoint/hospital-booking/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs from the composition root.
type Dependencies struct {
	AuthService    ports.AuthService
	BookingService ports.BookingService
	// Readiness lists the backing services probed by GET /health/ready.
	Readiness     map[string]handlers.Pinger
	RateLimiter   *middleware.RateLimiter
	SecureCookies bool
	// TrustProxy takes the client IP from X-Forwarded-For when the request
	// comes from a loopback or private-network proxy. Otherwise the socket
	// address is used and forwarding headers are ignored.
	TrustProxy bool
	Logger        zerolog.Logger
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()
	e.IPExtractor = echo.ExtractIPDirect()
	if deps.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hospital_booking",
		Registerer: deps.Registerer,
	}))
	e.Use(middleware.Session(deps.AuthService, deps.SecureCookies, deps.Logger))

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SecureCookies)
	dashboardHandler := handler.NewDashboardHandler(deps.BookingService)
	bookingHandler := handler.NewBookingHandler(deps.BookingService)

	throttle := middleware.RateLimit(deps.RateLimiter)
	loggedIn := middleware.RequireLogin()
	customerOnly := middleware.RequireRole(domain.RoleCustomer)
	hospitalOnly := middleware.RequireRole(domain.RoleHospital)

	// --- Auth routes ---
	e.GET("/", authHandler.Home)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login, throttle)
	e.GET("/signup", authHandler.SignupForm)
	e.POST("/signup", authHandler.Signup, throttle)
	e.GET("/logout", authHandler.Logout, loggedIn)

	// --- Dashboards ---
	e.GET("/hospital", dashboardHandler.Hospital, hospitalOnly)
	e.GET("/customer", dashboardHandler.Customer, customerOnly)

	// --- Booking flow ---
	e.GET("/booking_pre_registration", bookingHandler.PreRegistration, customerOnly)
	e.POST("/hospital_booking/:hospital_id", bookingHandler.HospitalBooking, customerOnly)
	e.POST("/confirm_booking/:hospital_id", bookingHandler.Confirm, customerOnly)

	// --- Informational pages ---
	for _, view := range []string{
		handler.ViewAvailability,
		handler.ViewEmergencyContact,
		handler.ViewNavigation,
		handler.ViewQueueStatus,
	} {
		e.GET("/"+view, handler.StaticView(view), loggedIn)
	}

	// --- Health probes, metrics and docs (no session required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
