package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"wastetrack/config"
	"wastetrack/internal/domain/lifecycle"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarn       = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection. On start it pings the server, runs the schema
// migration when enabled and begins sampling pool statistics.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Writes that must be atomic go through the transaction manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	sampleCtx, stopSampling := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.AutoMigrate {
				if err := migrate(ctx, db); err != nil {
					return err
				}
			}
			go samplePool(sampleCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampling()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// samplePool exports pool gauges and warns when statements queue for a connection.
func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		metrics.DBPoolConnections.WithLabelValues("open").Set(float64(cur.OpenConnections))
		metrics.DBPoolConnections.WithLabelValues("in_use").Set(float64(cur.InUse))
		metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(cur.Idle))

		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur
		if waits <= 0 {
			continue
		}
		metrics.DBPoolWaits.Add(float64(waits))

		if waited >= poolWaitWarn {
			logger.Warn("Postgres pool wait detected",
				slog.Int64("waits", waits),
				slog.Duration("avg_wait", waited/time.Duration(waits)),
				slog.Int("max_open", cur.MaxOpenConnections),
				slog.Int("in_use", cur.InUse),
			)
		}
	}
}
