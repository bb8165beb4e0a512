package ports

import (
	"context"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// BookingRepository persists bookings. It does not check that HospitalID
// refers to an existing hospital account.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// ListByHospital returns the hospital's bookings, newest first.
	ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Booking, error)
}
