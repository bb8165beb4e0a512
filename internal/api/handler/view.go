package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Page names. Each page route renders one of these in its view envelope.
const (
	viewLogin                  = "login"
	viewSignup                 = "signup"
	viewHospitalInterface      = "hospital_interface"
	viewCustomerInterface      = "customer_interface"
	viewBookingPreRegistration = "booking_pre_registration"
	viewHospitalBooking        = "hospital_booking"

	ViewAvailability     = "availability"
	ViewEmergencyContact = "emergency_contact"
	ViewNavigation       = "navigation"
	ViewQueueStatus      = "queue_status"
)

// viewResponse is the envelope every page route renders: the page name, the
// flash messages pending for the browser, and the page data.
type viewResponse struct {
	View    string   `json:"view"`
	Flashes []string `json:"flashes"`
	Data    any      `json:"data,omitempty"`
}

// render writes a page. Flashes left by a previous redirect are consumed and
// shown before the ones passed in.
func render(c echo.Context, code int, view string, data any, flashes ...string) error {
	all := append(popFlashes(c), flashes...)
	return c.JSON(code, viewResponse{View: view, Flashes: all, Data: data})
}

// StaticView renders a page that carries no data.
func StaticView(view string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, http.StatusOK, view, nil)
	}
}
