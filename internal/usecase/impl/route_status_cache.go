package impl

import (
	"sync"
	"time"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

type cachedStatuses struct {
	date      string
	records   []*entity.CollectionStatusRecord
	fetchedAt time.Time
}

// routeStatusCache holds each collector's status rows for one day.
type routeStatusCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[uuid.UUID]*cachedStatuses
}

func newRouteStatusCache(ttl time.Duration) *routeStatusCache {
	return &routeStatusCache{
		ttl:     ttl,
		entries: make(map[uuid.UUID]*cachedStatuses),
	}
}

// get returns a copy of the cached rows while they are fresh and for the same date.
func (c *routeStatusCache) get(collectorID uuid.UUID, date string, now time.Time) ([]*entity.CollectionStatusRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[collectorID]
	if !ok || entry.date != date || now.Sub(entry.fetchedAt) > c.ttl {
		return nil, false
	}

	records := make([]*entity.CollectionStatusRecord, len(entry.records))
	copy(records, entry.records)

	return records, true
}

func (c *routeStatusCache) store(collectorID uuid.UUID, date string, records []*entity.CollectionStatusRecord, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[collectorID] = &cachedStatuses{
		date:      date,
		records:   records,
		fetchedAt: now,
	}
}

// apply replaces or appends a freshly written row in a cached entry for the same date.
func (c *routeStatusCache) apply(collectorID uuid.UUID, record *entity.CollectionStatusRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[collectorID]
	if !ok || entry.date != record.CollectionDate {
		return
	}

	updated := make([]*entity.CollectionStatusRecord, 0, len(entry.records)+1)
	for _, existing := range entry.records {
		if existing.Key() != record.Key() {
			updated = append(updated, existing)
		}
	}
	entry.records = append(updated, record)
}

func (c *routeStatusCache) invalidate(collectorID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, collectorID)
}
