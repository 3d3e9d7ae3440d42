package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCounterStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisCounterStore(client, "test:")
	ctx := context.Background()

	got, err := store.Get(ctx, "schedule_notified:u1:2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	for want := 1; want <= 3; want++ {
		got, err = store.Increment(ctx, "schedule_notified:u1:2026-10-17", 48*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err = store.Get(ctx, "schedule_notified:u1:2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	assert.True(t, mr.Exists("test:schedule_notified:u1:2026-10-17"))
	assert.Equal(t, 48*time.Hour, mr.TTL("test:schedule_notified:u1:2026-10-17"))

	mr.FastForward(49 * time.Hour)
	got, err = store.Get(ctx, "schedule_notified:u1:2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestRedisCounterStore_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	store := NewRedisCounterStore(client, "")
	_, err := store.Increment(context.Background(), "k", time.Hour)
	assert.Error(t, err)
}

func TestMemoryCounterStore(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	store := newMemoryCounterStore(func() time.Time { return now })
	ctx := context.Background()

	v, err := store.Increment(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = store.Increment(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	now = now.Add(time.Hour)
	v, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = store.Increment(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMemoryCounterStore_PurgesUnreadExpiredKeys(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	store := newMemoryCounterStore(func() time.Time { return now })
	ctx := context.Background()

	for _, key := range []string{"schedule_notified:u1:2026-10-17", "schedule_notified:u2:2026-10-17"} {
		_, err := store.Increment(ctx, key, 48*time.Hour)
		require.NoError(t, err)
	}
	require.Len(t, store.entries, 2)

	now = now.Add(49 * time.Hour)
	_, err := store.Increment(ctx, "schedule_notified:u1:2026-10-19", 48*time.Hour)
	require.NoError(t, err)

	assert.Len(t, store.entries, 1)
	assert.Contains(t, store.entries, "schedule_notified:u1:2026-10-19")
}
