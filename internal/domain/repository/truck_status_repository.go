// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"wastetrack/internal/domain/entity"
)

// ErrTruckStatusNotFound is returned when no status row exists for a truck id.
var ErrTruckStatusNotFound = errors.New("truck status not found")

// TruckStatusRepository defines the interface for truck status persistence.
type TruckStatusRepository interface {
	// Upsert writes the full status row for status.TruckID, inserting it on first use.
	// Nil coordinates are written as NULL, clearing a previous fix.
	Upsert(ctx context.Context, status *entity.TruckStatus) error

	// FindByID retrieves the status of a single truck.
	FindByID(ctx context.Context, truckID string) (*entity.TruckStatus, error)

	// FindAll retrieves every known truck.
	FindAll(ctx context.Context) ([]*entity.TruckStatus, error)

	// FindCollecting retrieves trucks that are collecting and carry a position fix.
	FindCollecting(ctx context.Context) ([]*entity.TruckStatus, error)
}
