package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

// maxShortField bounds sex and blood group, in characters.
const maxShortField = 20

type BookingService struct {
	accounts ports.AccountRepository
	bookings ports.BookingRepository
	// strictReference makes Confirm reject bookings whose hospital id does not
	// resolve to a hospital account. Off by default.
	strictReference bool
	logger          zerolog.Logger
}

func NewBookingService(accounts ports.AccountRepository, bookings ports.BookingRepository, strictReference bool, logger zerolog.Logger) *BookingService {
	return &BookingService{
		accounts:        accounts,
		bookings:        bookings,
		strictReference: strictReference,
		logger:          logger,
	}
}

func (s *BookingService) ListHospitals(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.ListByRole(ctx, domain.RoleHospital)
}

// HospitalForBooking returns the account behind hospitalID, provided it is a
// hospital. Customers and unknown ids are both reported as ErrAccountNotFound.
func (s *BookingService) HospitalForBooking(ctx context.Context, hospitalID string) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if !account.IsHospital() {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Confirm records a booking for the given hospital.
func (s *BookingService) Confirm(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		PatientName: strings.TrimSpace(in.PatientName),
		Age:         in.Age,
		Sex:         strings.TrimSpace(in.Sex),
		BloodGroup:  strings.TrimSpace(in.BloodGroup),
		HospitalID:  in.HospitalID,
		CreatedAt:   time.Now().UTC(),
	}
	if booking.PatientName == "" || booking.Age <= 0 || booking.HospitalID == "" ||
		utf8.RuneCountInString(booking.Sex) > maxShortField ||
		utf8.RuneCountInString(booking.BloodGroup) > maxShortField {
		return nil, domain.ErrInvalidInput
	}

	if s.strictReference {
		if _, err := s.HospitalForBooking(ctx, in.HospitalID); err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				s.logger.Warn().Str("hospital_id", in.HospitalID).Msg("booking rejected: unknown hospital")
			}
			return nil, err
		}
	}

	created, err := s.bookings.Create(ctx, booking)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn().Str("hospital_id", in.HospitalID).Msg("booking rejected: unknown hospital")
		return nil, err
	}
	if err != nil {
		s.logger.Error().Err(err).Str("hospital_id", in.HospitalID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().Str("booking_id", created.ID).Str("hospital_id", created.HospitalID).Msg("booking created")
	return created, nil
}

func (s *BookingService) ListForHospital(ctx context.Context, hospitalID string) ([]*domain.Booking, error) {
	return s.bookings.ListByHospital(ctx, hospitalID)
}
