package repository

import (
	"context"
	"errors"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository provides read access to the external account store.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByRole retrieves every account acting under the role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)
}
