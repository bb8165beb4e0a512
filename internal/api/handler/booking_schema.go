package handler

import "time"

type hospitalBookingRequest struct {
	HospitalID string `param:"hospital_id"`
}

type confirmBookingRequest struct {
	HospitalID  string `param:"hospital_id"`
	PatientName string `form:"patient_name" json:"patient_name" validate:"required,max=150"`
	Age         int    `form:"age" json:"age" validate:"required,gt=0"`
	Sex         string `form:"sex" json:"sex" validate:"max=20"`
	BloodGroup  string `form:"blood_group" json:"blood_group" validate:"max=20"`
}

type hospitalResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type bookingResponse struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Age         int       `json:"age"`
	Sex         string    `json:"sex"`
	BloodGroup  string    `json:"blood_group"`
	HospitalID  string    `json:"hospital_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type customerPage struct {
	Username string `json:"username"`
}

type hospitalPage struct {
	Hospital hospitalResponse  `json:"hospital"`
	Bookings []bookingResponse `json:"bookings"`
}

type preRegistrationPage struct {
	Hospitals []hospitalResponse `json:"hospitals"`
}

type hospitalBookingPage struct {
	Hospital hospitalResponse `json:"hospital"`
}
