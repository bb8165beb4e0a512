package ports

import (
	"context"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// ConfirmBookingInput is the DTO passed from the transport layer to BookingService.
type ConfirmBookingInput struct {
	HospitalID  string
	PatientName string
	Age         int
	Sex         string
	BloodGroup  string
}

// BookingService covers the customer booking flow and the hospital dashboard.
type BookingService interface {
	ListHospitals(ctx context.Context) ([]*domain.Account, error)
	// HospitalForBooking resolves the hospital a booking form is shown for.
	HospitalForBooking(ctx context.Context, hospitalID string) (*domain.Account, error)
	Confirm(ctx context.Context, input ConfirmBookingInput) (*domain.Booking, error)
	ListForHospital(ctx context.Context, hospitalID string) ([]*domain.Booking, error)
}
