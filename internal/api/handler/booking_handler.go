package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/hospital-booking/internal/api/metrics"
	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

const preRegistrationPath = "/booking_pre_registration"

// BookingHandler handles the customer booking flow.
type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// PreRegistration lists the hospitals a customer can book with.
//
// @Summary      Choose a hospital
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /booking_pre_registration [get]
func (h *BookingHandler) PreRegistration(c echo.Context) error {
	hospitals, err := h.bookingService.ListHospitals(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, viewBookingPreRegistration, preRegistrationPage{
		Hospitals: toHospitalResponses(hospitals),
	})
}

// HospitalBooking renders the booking form for one hospital.
//
// @Summary      Booking form
// @Tags         bookings
// @Produce      json
// @Param        hospital_id  path  string  true  "Hospital account id"
// @Success      200  {object}  viewResponse
// @Success      302
// @Router       /hospital_booking/{hospital_id} [post]
func (h *BookingHandler) HospitalBooking(c echo.Context) error {
	var req hospitalBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	hospital, err := h.bookingService.HospitalForBooking(c.Request().Context(), req.HospitalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return redirectWithFlash(c, preRegistrationPath, msgHospitalNotFound)
		}
		return err
	}

	return render(c, http.StatusOK, viewHospitalBooking, hospitalBookingPage{
		Hospital: toHospitalResponse(hospital),
	})
}

// Confirm records the booking submitted from the booking form.
//
// @Summary      Confirm booking
// @Tags         bookings
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        hospital_id   path      string  true   "Hospital account id"
// @Param        patient_name  formData  string  true   "Patient name"
// @Param        age           formData  int     true   "Patient age"
// @Param        sex           formData  string  false  "Patient sex"
// @Param        blood_group   formData  string  false  "Blood group"
// @Success      302
// @Failure      422  {object}  viewResponse
// @Router       /confirm_booking/{hospital_id} [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	var req confirmBookingRequest
	if err := c.Bind(&req); err != nil {
		return h.rejectForm(c, c.Param("hospital_id"), "age must be a whole number")
	}
	if err := c.Validate(&req); err != nil {
		return h.rejectForm(c, req.HospitalID, err.Error())
	}

	_, err := h.bookingService.Confirm(c.Request().Context(), ports.ConfirmBookingInput{
		HospitalID:  req.HospitalID,
		PatientName: req.PatientName,
		Age:         req.Age,
		Sex:         req.Sex,
		BloodGroup:  req.BloodGroup,
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return redirectWithFlash(c, preRegistrationPath, msgHospitalNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		return h.rejectForm(c, req.HospitalID, "patient_name is required")
	case err != nil:
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return redirectWithFlash(c, "/customer", msgBookingConfirmed)
}

// rejectForm re-renders the booking form with the validation message.
func (h *BookingHandler) rejectForm(c echo.Context, hospitalID, msg string) error {
	return render(c, http.StatusUnprocessableEntity, viewHospitalBooking, hospitalBookingPage{
		Hospital: hospitalResponse{ID: hospitalID},
	}, msg)
}
