package service

import (
	"context"
	"time"
)

// CounterStore is a key-value store of integer counters with expiry.
type CounterStore interface {
	// Get returns the current value, zero when the key does not exist.
	Get(ctx context.Context, key string) (int, error)

	// Increment adds one to the counter and returns the new value. The ttl is applied
	// when the key is created.
	Increment(ctx context.Context, key string, ttl time.Duration) (int, error)
}
