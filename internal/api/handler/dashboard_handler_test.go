package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

func TestDashboardHandler_Hospital_ListsOwnBookings(t *testing.T) {
	hospital := &domain.Principal{AccountID: "1", Username: "carol", Role: domain.RoleHospital}
	stub := &stubBookingService{
		listForHospitalFn: func(ctx context.Context, hospitalID string) ([]*domain.Booking, error) {
			if hospitalID != "1" {
				t.Fatalf("listed bookings of hospital %s", hospitalID)
			}
			return []*domain.Booking{
				{ID: "11", PatientName: "Jane", Age: 31, HospitalID: "1", CreatedAt: time.Now()},
				{ID: "10", PatientName: "John", Age: 40, Sex: "M", BloodGroup: "O+", HospitalID: "1", CreatedAt: time.Now().Add(-time.Minute)},
			}, nil
		},
	}
	c, rec := newFormContext(http.MethodGet, "/hospital", nil, hospital)

	if err := NewDashboardHandler(stub).Hospital(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeView(t, rec)
	data, _ := resp.Data.(map[string]any)
	bookings, _ := data["bookings"].([]any)
	if resp.View != "hospital_interface" || len(bookings) != 2 {
		t.Fatalf("unexpected view: %+v", resp)
	}
	first, _ := bookings[0].(map[string]any)
	if first["patient_name"] != "Jane" {
		t.Fatalf("expected newest booking first, got %v", first)
	}
}

func TestDashboardHandler_Hospital_EmptyListRendersArray(t *testing.T) {
	hospital := &domain.Principal{AccountID: "5", Username: "empty", Role: domain.RoleHospital}
	stub := &stubBookingService{
		listForHospitalFn: func(ctx context.Context, hospitalID string) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
	c, rec := newFormContext(http.MethodGet, "/hospital", nil, hospital)

	if err := NewDashboardHandler(stub).Hospital(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data, _ := decodeView(t, rec).Data.(map[string]any)
	if bookings, ok := data["bookings"].([]any); !ok || len(bookings) != 0 {
		t.Fatalf("expected empty bookings array, got %v", data["bookings"])
	}
}

func TestDashboardHandler_Customer(t *testing.T) {
	c, rec := newFormContext(http.MethodGet, "/customer", nil, customer)

	if err := NewDashboardHandler(&stubBookingService{}).Customer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeView(t, rec)
	data, _ := resp.Data.(map[string]any)
	if resp.View != "customer_interface" || data["username"] != "alice" {
		t.Fatalf("unexpected view: %+v", resp)
	}
}

func TestDashboardHandler_WithoutPrincipal(t *testing.T) {
	c, _ := newFormContext(http.MethodGet, "/customer", nil, nil)

	if err := NewDashboardHandler(&stubBookingService{}).Customer(c); err == nil {
		t.Fatalf("expected error without a session")
	}
}
