package ports

import (
	"context"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

// AccountRepository persists accounts. Implementations must surface a
// uniqueness violation on username as domain.ErrDuplicateUsername and a
// missing account as domain.ErrAccountNotFound.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// ListByRole returns every account with the given role, ordered by username.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Account, error)
}
