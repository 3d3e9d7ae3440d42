// Package cache provides counter stores for per-day notification limits.
package cache

import (
	"context"
	"log/slog"
	"time"

	"wastetrack/config"
	"wastetrack/internal/domain/lifecycle"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// incrementScript increments a counter and sets its expiry only when the key is new.
var incrementScript = redis.NewScript(`
local v = redis.call("INCR", KEYS[1])
if v == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return v
`)

// redisCounterStore implements service.CounterStore on Redis.
type redisCounterStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisCounterStore wraps an existing client.
func NewRedisCounterStore(client redis.UniversalClient, keyPrefix string) service.CounterStore {
	return &redisCounterStore{client: client, keyPrefix: keyPrefix}
}

// Get returns the current value, zero when the key does not exist.
func (s *redisCounterStore) Get(ctx context.Context, key string) (int, error) {
	v, err := s.client.Get(ctx, s.keyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get counter %s", key)
	}

	return v, nil
}

// Increment adds one to the counter and applies ttl when the key is created.
func (s *redisCounterStore) Increment(ctx context.Context, key string, ttl time.Duration) (int, error) {
	v, err := incrementScript.Run(ctx, s.client, []string{s.keyPrefix + key}, ttl.Milliseconds()).Int()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment counter %s", key)
	}

	return v, nil
}

// Params defines the dependencies of the counter store provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New provides a Redis-backed counter store when Redis is configured and an
// in-memory store otherwise.
func New(params Params) service.CounterStore {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis not configured, daily notification counters are kept in memory")

		return NewMemoryCounterStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping failed")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCounterStore(client, cfg.KeyPrefix)
}
