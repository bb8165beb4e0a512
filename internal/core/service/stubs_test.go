package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byUsername map[string]*domain.Account
	nextID     int
	createErr  error // if set, Create returns this error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byUsername: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

// Create mirrors the unique index of the real stores.
func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byUsername[a.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	r.nextID++
	stored := cloneAccount(a)
	stored.ID = strconv.Itoa(r.nextID)
	r.byUsername[stored.Username] = stored
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	a, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.byUsername {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.byUsername {
		if a.Role == role {
			out = append(out, cloneAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type stubBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *b
	clone.ID = strconv.Itoa(len(r.bookings) + 1)
	r.bookings = append(r.bookings, &clone)
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) ListByHospital(_ context.Context, hospitalID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].HospitalID == hospitalID {
			clone := *r.bookings[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubSessionStore struct {
	sessions map[string]string
	ttls     map[string]time.Duration
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (s *stubSessionStore) Save(_ context.Context, sessionID, accountID string, ttl time.Duration) error {
	s.sessions[sessionID] = accountID
	s.ttls[sessionID] = ttl
	return nil
}

func (s *stubSessionStore) Lookup(_ context.Context, sessionID string) (string, error) {
	id, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return id, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}
