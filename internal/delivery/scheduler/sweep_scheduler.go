// Package scheduler runs the end-of-day route sweep on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wastetrack/config"
	"wastetrack/internal/delivery"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/lifecycle"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/metrics"
	"wastetrack/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	triggerDaily    = "daily"
	triggerFallback = "fallback"

	// activationLookback bounds the search for the tick a late daily run belongs to.
	activationLookback = 48 * time.Hour
)

var specParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// SweepScheduler fires the daily sweep at the end of each local day and an hourly
// fallback that catches up on a previous day the daily job never completed.
type SweepScheduler struct {
	cron    *cron.Cron
	daily   cron.Schedule
	routes  usecase.RouteUsecase
	enabled bool
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	swept map[string]struct{}
}

// Params holds dependencies for the sweep scheduler, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Routes usecase.RouteUsecase
}

// New registers the sweep jobs. Invalid cron specs fail startup.
func New(params Params) (delivery.Delivery, error) {
	s, err := newSweepScheduler(params.Config, params.Routes, params.Logger, time.Now)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newSweepScheduler(cfg *config.Config, routes usecase.RouteUsecase, logger *slog.Logger, now func() time.Time) (*SweepScheduler, error) {
	loc := cfg.Location()
	ctx, cancel := context.WithCancel(context.Background())

	s := &SweepScheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		routes:  routes,
		enabled: cfg.Route.SweepEnabled,
		loc:     loc,
		now:     now,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		swept:   make(map[string]struct{}),
	}

	daily, err := specParser.Parse(cfg.Route.SweepSpec)
	if err != nil {
		cancel()

		return nil, errors.Wrapf(err, "invalid sweep spec %q", cfg.Route.SweepSpec)
	}
	s.daily = daily
	s.cron.Schedule(daily, cron.FuncJob(s.runDaily))

	if _, err := s.cron.AddFunc(cfg.Route.FallbackSpec, s.runFallback); err != nil {
		cancel()

		return nil, errors.Wrapf(err, "invalid fallback spec %q", cfg.Route.FallbackSpec)
	}

	return s, nil
}

// Serve runs the cron loop until stop is called.
func (s *SweepScheduler) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Route sweep scheduler disabled")

		return nil
	}

	s.logger.Info("Starting route sweep scheduler", slog.String("timezone", s.loc.String()))
	s.cron.Run()

	return nil
}

func (s *SweepScheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping route sweep scheduler")
	s.cancel()

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "sweep jobs did not finish")
	}
}

// runDaily sweeps the day of the tick being served, so a run delayed past midnight
// still finalizes the day that just ended.
func (s *SweepScheduler) runDaily() {
	tick := lastActivation(s.daily, s.now().In(s.loc))
	s.sweep(triggerDaily, tick.Format(entity.DateLayout))
}

// lastActivation returns the latest activation of schedule at or before now.
func lastActivation(schedule cron.Schedule, now time.Time) time.Time {
	tick := schedule.Next(now.Add(-activationLookback))
	if tick.IsZero() || tick.After(now) {
		return now
	}
	for next := schedule.Next(tick); !next.IsZero() && !next.After(now); next = schedule.Next(next) {
		tick = next
	}

	return tick
}

// runFallback sweeps yesterday when no run for it completed in this process.
func (s *SweepScheduler) runFallback() {
	yesterday := s.now().In(s.loc).AddDate(0, 0, -1).Format(entity.DateLayout)
	if s.wasSwept(yesterday) {
		return
	}
	s.sweep(triggerFallback, yesterday)
}

func (s *SweepScheduler) wasSwept(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.swept[date]

	return ok
}

func (s *SweepScheduler) markSwept(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.swept[date] = struct{}{}

	// Only the previous day matters to the fallback; keep a week.
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return
	}
	cutoff := day.AddDate(0, 0, -7).Format(entity.DateLayout)
	for swept := range s.swept {
		if swept < cutoff {
			delete(s.swept, swept)
		}
	}
}

// sweep runs one sweep for date and records its outcome.
func (s *SweepScheduler) sweep(trigger, date string) {
	started := s.now()
	result, err := s.routes.SweepDay(s.ctx, date)
	elapsed := s.now().Sub(started).Round(time.Millisecond)

	if err != nil {
		metrics.SweepRuns.WithLabelValues(trigger, "error").Inc()
		s.logger.Error("Route sweep failed",
			slog.String("trigger", trigger),
			slog.String("date", date),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return
	}

	metrics.SweepRuns.WithLabelValues(trigger, "success").Inc()
	s.markSwept(date)
	s.logger.Info("Route sweep finished",
		slog.String("trigger", trigger),
		slog.String("date", date),
		slog.Int("collectors", result.Collectors),
		slog.Int("missed", result.Missed),
		slog.Duration("elapsed", elapsed),
	)
}
