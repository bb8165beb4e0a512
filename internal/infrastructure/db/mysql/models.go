package mysql

import (
	"strconv"
	"time"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// accountModel represents the accounts table. Usernames use a binary
// collation so uniqueness and lookups are exact, case and accents included.
type accountModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(150) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:50;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (accountModel) TableName() string {
	return "accounts"
}

func (m *accountModel) toDomain() *domain.Account {
	return &domain.Account{
		ID:           formatID(m.ID),
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

// bookingModel represents the bookings table. HospitalID carries no foreign
// key constraint; the reference is checked, if at all, by the booking service.
type bookingModel struct {
	ID          uint      `gorm:"primaryKey"`
	PatientName string    `gorm:"size:150;not null"`
	Age         int       `gorm:"not null"`
	Sex         string    `gorm:"size:20"`
	BloodGroup  string    `gorm:"size:20"`
	HospitalID  uint      `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (bookingModel) TableName() string {
	return "bookings"
}

func (m *bookingModel) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          formatID(m.ID),
		PatientName: m.PatientName,
		Age:         m.Age,
		Sex:         m.Sex,
		BloodGroup:  m.BloodGroup,
		HospitalID:  formatID(m.HospitalID),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseID converts a path id into a primary key. Anything that is not a
// positive integer cannot name a row.
func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
