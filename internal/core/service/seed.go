package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/hospital-booking/internal/core/domain"
	"github.com/carepoint/hospital-booking/internal/core/ports"
)

// Seeder creates the hospital accounts listed in configuration. Accounts that
// already exist are left untouched, so running it on every start is safe.
type Seeder struct {
	accounts ports.AccountRepository
	hashCost int
	log      zerolog.Logger
}

func NewSeeder(accounts ports.AccountRepository, log zerolog.Logger) *Seeder {
	return &Seeder{accounts: accounts, hashCost: bcrypt.DefaultCost, log: log}
}

// SeedHospitals takes username → password pairs and returns how many accounts
// were created.
func (s *Seeder) SeedHospitals(ctx context.Context, hospitals map[string]string) (int, error) {
	usernames := make([]string, 0, len(hospitals))
	for u := range hospitals {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	created := 0
	for _, username := range usernames {
		if _, err := s.accounts.FindByUsername(ctx, username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return created, fmt.Errorf("seed %s: %w", username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(hospitals[username]), s.hashCost)
		if err != nil {
			return created, fmt.Errorf("seed %s: hash password: %w", username, err)
		}
		_, err = s.accounts.Create(ctx, &domain.Account{
			Username:     username,
			PasswordHash: string(hash),
			Role:         domain.RoleHospital,
			CreatedAt:    time.Now().UTC(),
		})
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			// another instance seeded it first
		case err != nil:
			return created, fmt.Errorf("seed %s: %w", username, err)
		default:
			created++
		}
	}

	if created > 0 {
		s.log.Info().Int("created", created).Msg("hospital accounts seeded")
	}
	return created, nil
}
