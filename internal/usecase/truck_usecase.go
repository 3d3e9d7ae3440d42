package usecase

import (
	"context"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// TruckUsecase handles collector-side truck status updates
type TruckUsecase interface {
	// UpdatePosition records a GPS fix and marks the truck as collecting
	UpdatePosition(ctx context.Context, collectorID uuid.UUID, truckID string, position Coordinates) (*entity.TruckStatus, error)

	// StartCollecting clears the full flag and announces collection to residents
	StartCollecting(ctx context.Context, collectorID uuid.UUID, truckID string) (*entity.TruckStatus, error)

	// StopCollecting ends the session without touching route statuses
	StopCollecting(ctx context.Context, collectorID uuid.UUID, truckID string, clearPosition bool) (*entity.TruckStatus, error)

	// MarkFull flags the truck full, stops collecting and skips the rest of today's route
	MarkFull(ctx context.Context, collectorID uuid.UUID, truckID string) (*entity.TruckStatus, int, error)

	// GetStatus returns the truck status
	GetStatus(ctx context.Context, truckID string) (*entity.TruckStatus, error)

	// ListActive returns every collecting truck with a known position
	ListActive(ctx context.Context) ([]*entity.TruckStatus, error)
}
