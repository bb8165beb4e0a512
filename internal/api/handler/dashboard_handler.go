package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/hospital-booking/internal/core/ports"
)

// DashboardHandler serves the landing page of each role.
type DashboardHandler struct {
	bookingService ports.BookingService
}

func NewDashboardHandler(bookingService ports.BookingService) *DashboardHandler {
	return &DashboardHandler{bookingService: bookingService}
}

// Hospital lists the bookings made for the logged-in hospital, newest first.
//
// @Summary      Hospital dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  viewResponse
// @Success      302
// @Router       /hospital [get]
func (h *DashboardHandler) Hospital(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListForHospital(c.Request().Context(), p.AccountID)
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, viewHospitalInterface, hospitalPage{
		Hospital: hospitalResponse{ID: p.AccountID, Username: p.Username},
		Bookings: toBookingResponses(bookings),
	})
}

// Customer renders the customer landing page.
//
// @Summary      Customer dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  viewResponse
// @Success      302
// @Router       /customer [get]
func (h *DashboardHandler) Customer(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, viewCustomerInterface, customerPage{Username: p.Username})
}
