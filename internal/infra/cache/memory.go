package cache

import (
	"context"
	"sync"
	"time"

	"wastetrack/internal/domain/service"
)

// purgeInterval is how often Increment drops expired keys nobody reads again.
const purgeInterval = 10 * time.Minute

type memoryEntry struct {
	value     int
	expiresAt time.Time
}

// memoryCounterStore is a process-local service.CounterStore.
type memoryCounterStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	now       func() time.Time
	nextPurge time.Time
}

// NewMemoryCounterStore creates an empty in-memory counter store.
func NewMemoryCounterStore() service.CounterStore {
	return newMemoryCounterStore(time.Now)
}

func newMemoryCounterStore(now func() time.Time) *memoryCounterStore {
	return &memoryCounterStore{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (s *memoryCounterStore) Get(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}

	return entry.value, nil
}

func (s *memoryCounterStore) Increment(_ context.Context, key string, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpired()

	entry, ok := s.lookup(key)
	if !ok {
		entry = memoryEntry{expiresAt: s.now().Add(ttl)}
	}
	entry.value++
	s.entries[key] = entry

	return entry.value, nil
}

// lookup must be called with mu held. Expired entries are dropped.
func (s *memoryCounterStore) lookup(key string) (memoryEntry, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)

		return memoryEntry{}, false
	}

	return entry, true
}

// purgeExpired must be called with mu held.
func (s *memoryCounterStore) purgeExpired() {
	now := s.now()
	if now.Before(s.nextPurge) {
		return
	}
	s.nextPurge = now.Add(purgeInterval)

	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
