package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"wastetrack/config"
	"wastetrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoutes records SweepDay calls; every other method is unused here.
type fakeRoutes struct {
	usecase.RouteUsecase

	mu    sync.Mutex
	dates []string
	err   error
}

func (f *fakeRoutes) SweepDay(_ context.Context, date string) (*usecase.SweepResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}

	return &usecase.SweepResult{Date: date, Collectors: 1, Missed: 2}, nil
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Timezone = "Asia/Manila"
	cfg.Route = &config.RouteConfig{
		SweepEnabled: true,
		SweepSpec:    "59 59 23 * * *",
		FallbackSpec: "0 0 * * * *",
	}

	return cfg
}

func fixedNow(t *testing.T, value string) func() time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, loc)
	require.NoError(t, err)

	return func() time.Time { return ts }
}

func TestSweepScheduler_DailySweepsToday(t *testing.T) {
	routes := &fakeRoutes{}
	s, err := newSweepScheduler(newTestConfig(), routes, slog.New(slog.DiscardHandler), fixedNow(t, "2026-10-19 23:59:59"))
	require.NoError(t, err)

	s.runDaily()

	assert.Equal(t, []string{"2026-10-19"}, routes.dates)
	assert.True(t, s.wasSwept("2026-10-19"))
}

func TestSweepScheduler_LateDailyTickSweepsEndedDay(t *testing.T) {
	routes := &fakeRoutes{}
	s, err := newSweepScheduler(newTestConfig(), routes, slog.New(slog.DiscardHandler), fixedNow(t, "2026-10-20 00:00:01"))
	require.NoError(t, err)

	s.runDaily()

	assert.Equal(t, []string{"2026-10-19"}, routes.dates)
	assert.True(t, s.wasSwept("2026-10-19"))
	assert.False(t, s.wasSwept("2026-10-20"), "the new day must stay open")
}

func TestLastActivation(t *testing.T) {
	daily, err := specParser.Parse("59 59 23 * * *")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  string
		want string
	}{
		{name: "on time", now: "2026-10-19 23:59:59", want: "2026-10-19 23:59:59"},
		{name: "late past midnight", now: "2026-10-20 00:00:01", want: "2026-10-19 23:59:59"},
		{name: "hours late", now: "2026-10-20 07:30:00", want: "2026-10-19 23:59:59"},
		{name: "just before the tick", now: "2026-10-19 23:59:58", want: "2026-10-18 23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lastActivation(daily, fixedNow(t, tt.now)())
			assert.Equal(t, tt.want, got.Format("2006-01-02 15:04:05"))
		})
	}
}

func TestSweepScheduler_FallbackCatchesUpYesterday(t *testing.T) {
	routes := &fakeRoutes{}
	s, err := newSweepScheduler(newTestConfig(), routes, slog.New(slog.DiscardHandler), fixedNow(t, "2026-10-20 08:00:00"))
	require.NoError(t, err)

	s.runFallback()
	s.runFallback()

	assert.Equal(t, []string{"2026-10-19"}, routes.dates, "second fallback must not sweep again")
}

func TestSweepScheduler_FallbackSkipsDaySweptByDailyJob(t *testing.T) {
	routes := &fakeRoutes{}
	now := fixedNow(t, "2026-10-19 23:59:59")
	s, err := newSweepScheduler(newTestConfig(), routes, slog.New(slog.DiscardHandler), now)
	require.NoError(t, err)

	s.runDaily()
	s.now = fixedNow(t, "2026-10-20 01:00:00")
	s.runFallback()

	assert.Equal(t, []string{"2026-10-19"}, routes.dates)
}

func TestSweepScheduler_FailedSweepIsRetried(t *testing.T) {
	routes := &fakeRoutes{err: errors.New("db down")}
	s, err := newSweepScheduler(newTestConfig(), routes, slog.New(slog.DiscardHandler), fixedNow(t, "2026-10-20 08:00:00"))
	require.NoError(t, err)

	s.runFallback()
	assert.False(t, s.wasSwept("2026-10-19"))

	routes.err = nil
	s.runFallback()
	assert.True(t, s.wasSwept("2026-10-19"))
	assert.Len(t, routes.dates, 2)
}

func TestSweepScheduler_MarkSweptKeepsAWeek(t *testing.T) {
	s, err := newSweepScheduler(newTestConfig(), &fakeRoutes{}, slog.New(slog.DiscardHandler), time.Now)
	require.NoError(t, err)

	s.markSwept("2026-10-01")
	s.markSwept("2026-10-19")

	assert.False(t, s.wasSwept("2026-10-01"))
	assert.True(t, s.wasSwept("2026-10-19"))
}

func TestNewSweepScheduler_InvalidSpec(t *testing.T) {
	cfg := newTestConfig()
	cfg.Route.SweepSpec = "not a cron spec"

	_, err := newSweepScheduler(cfg, &fakeRoutes{}, slog.New(slog.DiscardHandler), time.Now)
	assert.Error(t, err)
}

func TestSweepScheduler_DisabledServeReturns(t *testing.T) {
	cfg := newTestConfig()
	cfg.Route.SweepEnabled = false

	s, err := newSweepScheduler(cfg, &fakeRoutes{}, slog.New(slog.DiscardHandler), time.Now)
	require.NoError(t, err)
	assert.NoError(t, s.Serve(context.Background()))
}
