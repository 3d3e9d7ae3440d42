package repository

import (
	"context"
	"errors"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrScheduleNotFound is returned when a schedule is not found.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepository provides read access to schedule definitions.
type ScheduleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)

	// FindByStreetAndArea matches case-insensitively on street (or label) and barangay.
	FindByStreetAndArea(ctx context.Context, street, area string) (*entity.Schedule, error)

	FindByCollector(ctx context.Context, collectorID uuid.UUID) ([]*entity.Schedule, error)

	FindAll(ctx context.Context) ([]*entity.Schedule, error)
}
