package handler

import "github.com/carepoint/hospital-booking/internal/core/domain"

func toHospitalResponse(a *domain.Account) hospitalResponse {
	return hospitalResponse{ID: a.ID, Username: a.Username}
}

func toHospitalResponses(accounts []*domain.Account) []hospitalResponse {
	out := make([]hospitalResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toHospitalResponse(a))
	}
	return out
}

func toBookingResponses(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingResponse{
			ID:          b.ID,
			PatientName: b.PatientName,
			Age:         b.Age,
			Sex:         b.Sex,
			BloodGroup:  b.BloodGroup,
			HospitalID:  b.HospitalID,
			CreatedAt:   b.CreatedAt,
		})
	}
	return out
}
