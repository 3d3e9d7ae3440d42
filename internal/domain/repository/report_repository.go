package repository

import (
	"context"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportRepository provides read access to resident reports.
type ReportRepository interface {
	// FindByUser retrieves every report filed by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error)
}
