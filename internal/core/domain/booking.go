package domain

import "time"

// Booking is a patient registration request addressed to one hospital account.
// HospitalID is a soft reference: the stores do not check it.
type Booking struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Age         int       `json:"age"`
	Sex         string    `json:"sex"`
	BloodGroup  string    `json:"blood_group"`
	HospitalID  string    `json:"hospital_id"`
	CreatedAt   time.Time `json:"created_at"`
}
