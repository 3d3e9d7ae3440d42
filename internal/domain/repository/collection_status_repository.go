package repository

import (
	"context"
	"errors"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCollectionStatusNotFound is returned when no row exists for a collection key.
var ErrCollectionStatusNotFound = errors.New("collection status not found")

// CollectionStatusRepository persists per-stop, per-day collection outcomes.
// Rows are unique on (schedule_id, street_name, collection_date).
type CollectionStatusRepository interface {
	// Find retrieves the row for a composite key.
	Find(ctx context.Context, key entity.CollectionKey) (*entity.CollectionStatusRecord, error)

	// Upsert atomically inserts the record or updates the existing row for its key.
	// When replaceable is non-empty the update only happens if the stored status is one
	// of those values; applied is false when the guard kept the stored row. On success
	// the record is refreshed with the stored values.
	Upsert(ctx context.Context, record *entity.CollectionStatusRecord, replaceable ...entity.CollectionStatus) (applied bool, err error)

	// FindByCollectorAndDate retrieves all rows a collector owns for a calendar date.
	FindByCollectorAndDate(ctx context.Context, collectorID uuid.UUID, date string) ([]*entity.CollectionStatusRecord, error)
}
