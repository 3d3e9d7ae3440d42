package impl

import (
	"testing"
	"time"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteStatusCache(t *testing.T) {
	cache := newRouteStatusCache(30 * time.Second)
	collectorID := uuid.New()
	now := time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC)
	row := &entity.CollectionStatusRecord{ScheduleID: uuid.New(), StreetName: "Main St", CollectionDate: monday, Status: entity.StatusPending}

	_, ok := cache.get(collectorID, monday, now)
	assert.False(t, ok)

	cache.store(collectorID, monday, []*entity.CollectionStatusRecord{row}, now)

	got, ok := cache.get(collectorID, monday, now.Add(10*time.Second))
	require.True(t, ok)
	require.Len(t, got, 1)

	_, ok = cache.get(collectorID, "2026-10-20", now)
	assert.False(t, ok, "other dates miss")

	updated := *row
	updated.Status = entity.StatusCollected
	cache.apply(collectorID, &updated)
	got, _ = cache.get(collectorID, monday, now)
	require.Len(t, got, 1)
	assert.Equal(t, entity.StatusCollected, got[0].Status)

	other := &entity.CollectionStatusRecord{ScheduleID: uuid.New(), StreetName: "Side St", CollectionDate: monday, Status: entity.StatusSkipped}
	cache.apply(collectorID, other)
	got, _ = cache.get(collectorID, monday, now)
	assert.Len(t, got, 2)

	_, ok = cache.get(collectorID, monday, now.Add(31*time.Second))
	assert.False(t, ok, "expired entries miss")

	cache.invalidate(collectorID)
	_, ok = cache.get(collectorID, monday, now)
	assert.False(t, ok)
}
