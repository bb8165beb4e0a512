package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

var customer = &domain.Principal{AccountID: "2", Username: "alice", Role: domain.RoleCustomer}

func TestBookingHandler_PreRegistration(t *testing.T) {
	stub := &stubBookingService{
		listHospitalsFn: func(ctx context.Context) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: "1", Username: "carol", Role: domain.RoleHospital},
				{ID: "3", Username: "general", Role: domain.RoleHospital},
			}, nil
		},
	}
	c, rec := newFormContext(http.MethodGet, "/booking_pre_registration", nil, customer)

	if err := NewBookingHandler(stub).PreRegistration(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeView(t, rec)
	if resp.View != "booking_pre_registration" {
		t.Fatalf("unexpected view %q", resp.View)
	}
	data, _ := resp.Data.(map[string]any)
	hospitals, _ := data["hospitals"].([]any)
	if len(hospitals) != 2 {
		t.Fatalf("expected 2 hospitals, got %v", data)
	}
	first, _ := hospitals[0].(map[string]any)
	if first["id"] != "1" || first["username"] != "carol" {
		t.Fatalf("unexpected hospital: %v", first)
	}
	if _, leaked := first["password_hash"]; leaked {
		t.Fatalf("password hash must not be rendered")
	}
}

func TestBookingHandler_HospitalBooking(t *testing.T) {
	stub := &stubBookingService{
		hospitalForBookingFn: func(ctx context.Context, hospitalID string) (*domain.Account, error) {
			if hospitalID != "1" {
				return nil, domain.ErrAccountNotFound
			}
			return &domain.Account{ID: "1", Username: "carol", Role: domain.RoleHospital}, nil
		},
	}

	c, rec := newFormContext(http.MethodPost, "/hospital_booking/1", url.Values{}, customer)
	c.SetParamNames("hospital_id")
	c.SetParamValues("1")
	if err := NewBookingHandler(stub).HospitalBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeView(t, rec)
	data, _ := resp.Data.(map[string]any)
	hospital, _ := data["hospital"].(map[string]any)
	if resp.View != "hospital_booking" || hospital["username"] != "carol" {
		t.Fatalf("unexpected view: %+v", resp)
	}

	c, rec = newFormContext(http.MethodPost, "/hospital_booking/99", url.Values{}, customer)
	c.SetParamNames("hospital_id")
	c.SetParamValues("99")
	if err := NewBookingHandler(stub).HospitalBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectRedirect(t, rec, "/booking_pre_registration")
	if flashes := flashesFrom(t, rec); len(flashes) != 1 || flashes[0] != msgHospitalNotFound {
		t.Fatalf("unexpected flashes: %v", flashes)
	}
}

func TestBookingHandler_Confirm_Success(t *testing.T) {
	var got ports.ConfirmBookingInput
	stub := &stubBookingService{
		confirmFn: func(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
			got = in
			return &domain.Booking{ID: "10", HospitalID: in.HospitalID, CreatedAt: time.Now()}, nil
		},
	}
	form := url.Values{"patient_name": {"John"}, "age": {"40"}, "sex": {"M"}, "blood_group": {"O+"}}
	c, rec := newFormContext(http.MethodPost, "/confirm_booking/1", form, customer)
	c.SetParamNames("hospital_id")
	c.SetParamValues("1")

	if err := NewBookingHandler(stub).Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectRedirect(t, rec, "/customer")
	if flashes := flashesFrom(t, rec); len(flashes) != 1 || flashes[0] != msgBookingConfirmed {
		t.Fatalf("unexpected flashes: %v", flashes)
	}
	want := ports.ConfirmBookingInput{HospitalID: "1", PatientName: "John", Age: 40, Sex: "M", BloodGroup: "O+"}
	if got != want {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestBookingHandler_Confirm_MultibyteFieldsWithinLimit(t *testing.T) {
	var got ports.ConfirmBookingInput
	stub := &stubBookingService{
		confirmFn: func(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
			got = in
			return &domain.Booking{ID: "12", HospitalID: in.HospitalID}, nil
		},
	}
	sex := strings.Repeat("ñ", 12)
	form := url.Values{"patient_name": {"José"}, "age": {"40"}, "sex": {sex}, "blood_group": {"O+"}}
	c, rec := newFormContext(http.MethodPost, "/confirm_booking/1", form, customer)
	c.SetParamNames("hospital_id")
	c.SetParamValues("1")

	if err := NewBookingHandler(stub).Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectRedirect(t, rec, "/customer")
	if got.Sex != sex {
		t.Fatalf("sex not passed through: %q", got.Sex)
	}
}

func TestBookingHandler_Confirm_InvalidForm(t *testing.T) {
	stub := &stubBookingService{
		confirmFn: func(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
			t.Fatalf("service should not be called for an invalid form")
			return nil, nil
		},
	}

	cases := map[string]url.Values{
		"missing name":     {"age": {"40"}},
		"zero age":         {"patient_name": {"John"}, "age": {"0"}},
		"negative age":     {"patient_name": {"John"}, "age": {"-3"}},
		"non numeric age":  {"patient_name": {"John"}, "age": {"forty"}},
		"long blood group": {"patient_name": {"John"}, "age": {"40"}, "blood_group": {"ABCDEFGHIJKLMNOPQRSTUVWXYZ"}},
	}
	for name, form := range cases {
		c, rec := newFormContext(http.MethodPost, "/confirm_booking/1", form, customer)
		c.SetParamNames("hospital_id")
		c.SetParamValues("1")

		if err := NewBookingHandler(stub).Confirm(c); err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", name, rec.Code)
		}
		if resp := decodeView(t, rec); resp.View != "hospital_booking" || len(resp.Flashes) != 1 {
			t.Fatalf("%s: unexpected view: %+v", name, resp)
		}
	}
}

func TestBookingHandler_Confirm_UnknownHospital(t *testing.T) {
	stub := &stubBookingService{
		confirmFn: func(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	form := url.Values{"patient_name": {"John"}, "age": {"40"}}
	c, rec := newFormContext(http.MethodPost, "/confirm_booking/99", form, customer)
	c.SetParamNames("hospital_id")
	c.SetParamValues("99")

	if err := NewBookingHandler(stub).Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectRedirect(t, rec, "/booking_pre_registration")
}

func TestBookingHandler_Confirm_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("insert failed")
	stub := &stubBookingService{
		confirmFn: func(ctx context.Context, in ports.ConfirmBookingInput) (*domain.Booking, error) {
			return nil, boom
		},
	}
	form := url.Values{"patient_name": {"John"}, "age": {"40"}}
	c, _ := newFormContext(http.MethodPost, "/confirm_booking/1", form, customer)
	c.SetParamNames("hospital_id")
	c.SetParamValues("1")

	if err := NewBookingHandler(stub).Confirm(c); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
