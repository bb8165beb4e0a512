package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create stores a booking. A hospital id that is not a positive integer can
// never match an account row, so it is reported as ErrAccountNotFound.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	hospitalID, ok := parseID(booking.HospitalID)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	m := bookingModel{
		PatientName: booking.PatientName,
		Age:         booking.Age,
		Sex:         booking.Sex,
		BloodGroup:  booking.BloodGroup,
		HospitalID:  hospitalID,
		CreatedAt:   booking.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return m.toDomain(), nil
}

func (r *BookingRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*domain.Booking, error) {
	pk, ok := parseID(hospitalID)
	if !ok {
		return []*domain.Booking{}, nil
	}
	var rows []bookingModel
	if err := r.db.WithContext(ctx).
		Where("hospital_id = ?", pk).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	out := make([]*domain.Booking, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}
