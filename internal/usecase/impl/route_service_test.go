package impl

import (
	"context"
	"testing"
	"time"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/errors"
	mockRepo "wastetrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const monday = "2026-10-19"

type routeFixture struct {
	svc         *routeService
	schedules   *mockRepo.MockScheduleRepository
	statuses    *statusStore
	clock       *testClock
	collectorID uuid.UUID
}

func newRouteFixture(t *testing.T) *routeFixture {
	t.Helper()

	clock, _ := manilaClock(t, monday+" 10:00")
	f := &routeFixture{
		schedules:   mockRepo.NewMockScheduleRepository(t),
		statuses:    newStatusStore(),
		clock:       clock,
		collectorID: uuid.New(),
	}
	f.svc = newRouteService(RouteServiceParams{
		TxManager:    &txRunner{statuses: f.statuses},
		ScheduleRepo: f.schedules,
		StatusRepo:   f.statuses,
		Config:       testConfig(),
		Logger:       discardLogger,
	}, clock.Now)

	return f
}

func (f *routeFixture) schedule(street string, days ...string) *entity.Schedule {
	return &entity.Schedule{
		ID:             uuid.New(),
		CollectorID:    f.collectorID,
		Label:          street + " pickup",
		StreetName:     street,
		Barangay:       "San Isidro",
		Days:           days,
		CollectionTime: "07:00",
	}
}

func TestRoute_CompleteThenFullTruckDowngradesToSkipped(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	s1 := f.schedule("Main St", "Mon")

	f.schedules.EXPECT().FindByID(ctx, s1.ID).Return(s1, nil)
	f.schedules.EXPECT().FindByCollector(ctx, f.collectorID).Return([]*entity.Schedule{s1}, nil)

	stop := entity.Stop{ScheduleID: s1.ID, StreetName: "Main St", Barangay: "San Isidro"}
	record, err := f.svc.CompleteStop(ctx, f.collectorID, stop)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCollected, record.Status)
	assert.Equal(t, monday, record.CollectionDate)
	require.NotNil(t, record.MarkedBy)
	assert.Equal(t, f.collectorID, *record.MarkedBy)

	status, found, err := f.svc.GetRouteStatus(ctx, f.collectorID, stop)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.StatusCollected, status)

	written, err := f.svc.RecordRemainingAsSkipped(ctx, f.collectorID, "TRUCK-01", "full")
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	status, found, err = f.svc.GetRouteStatus(ctx, f.collectorID, stop)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.StatusSkipped, status)
}

func TestRoute_FullTruckKeepsMissedStops(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	missed := f.schedule("Main St", "Mon")
	open := f.schedule("Side St", "Mon")
	f.schedules.EXPECT().FindByCollector(ctx, f.collectorID).Return([]*entity.Schedule{missed, open}, nil)

	_, err := f.statuses.Upsert(ctx, newStatusRecord(missed, "", monday, entity.StatusMissed, f.clock.Now(), nil))
	require.NoError(t, err)

	written, err := f.svc.RecordRemainingAsSkipped(ctx, f.collectorID, "TRUCK-01", "")
	require.NoError(t, err)

	assert.Equal(t, 1, written)
	got, _ := f.statuses.status(missed.ID, "Main St", monday)
	assert.Equal(t, entity.StatusMissed, got)
	got, _ = f.statuses.status(open.ID, "Side St", monday)
	assert.Equal(t, entity.StatusSkipped, got)
}

func TestRoute_SweepDay(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	collected := f.schedule("Main St", "Mon")
	skipped := f.schedule("Side St", "Mon")
	pending := f.schedule("Back St", "Mon")
	untouched := f.schedule("Rizal Ave", "Mon", "Thu")
	tuesday := f.schedule("Market Rd", "Tue")

	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{collected, skipped, pending, untouched, tuesday}, nil)
	now := f.clock.Now()
	for _, seed := range []struct {
		schedule *entity.Schedule
		status   entity.CollectionStatus
	}{
		{collected, entity.StatusCollected},
		{skipped, entity.StatusSkipped},
		{pending, entity.StatusPending},
	} {
		_, err := f.statuses.Upsert(ctx, newStatusRecord(seed.schedule, "", monday, seed.status, now, &f.collectorID))
		require.NoError(t, err)
	}

	result, err := f.svc.SweepDay(ctx, monday)
	require.NoError(t, err)

	assert.Equal(t, monday, result.Date)
	assert.Equal(t, 1, result.Collectors)
	assert.Equal(t, 2, result.Missed)
	assert.Zero(t, result.Failed)

	expect := map[*entity.Schedule]entity.CollectionStatus{
		collected: entity.StatusCollected,
		skipped:   entity.StatusSkipped,
		pending:   entity.StatusMissed,
		untouched: entity.StatusMissed,
	}
	for schedule, want := range expect {
		got, ok := f.statuses.status(schedule.ID, schedule.CanonicalStreet(), monday)
		require.True(t, ok, schedule.StreetName)
		assert.Equal(t, want, got, schedule.StreetName)
	}
	_, ok := f.statuses.status(tuesday.ID, "Market Rd", monday)
	assert.False(t, ok)

	row, err := f.statuses.Find(ctx, entity.CollectionKey{ScheduleID: untouched.ID, StreetName: "Rizal Ave", CollectionDate: monday})
	require.NoError(t, err)
	assert.Nil(t, row.MarkedBy)
}

func TestRoute_SweepDay_IsIdempotent(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	s := f.schedule("Main St", "Mon")
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{s}, nil)

	first, err := f.svc.SweepDay(ctx, monday)
	require.NoError(t, err)
	second, err := f.svc.SweepDay(ctx, monday)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Missed)
	assert.Zero(t, second.Missed)
}

func TestRoute_SweepDay_EmptyDateMeansToday(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	f.schedules.EXPECT().FindAll(ctx).Return(nil, nil)

	result, err := f.svc.SweepDay(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, monday, result.Date)
}

func TestRoute_SweepDay_InvalidDate(t *testing.T) {
	f := newRouteFixture(t)

	_, err := f.svc.SweepDay(context.Background(), "19/10/2026")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidDate)
}

func TestRoute_SweepDay_ReportsFailedCollectors(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	f.statuses.fail = errors.New("deadlock detected")
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{f.schedule("Main St", "Mon")}, nil)

	result, err := f.svc.SweepDay(ctx, monday)

	require.Error(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.ErrorIs(t, err, domainerrors.ErrRouteStatusUpdateFailed)
}

func TestRoute_MarkRemainingAsMissed(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	done := f.schedule("Main St", "Mon")
	open := f.schedule("Side St", "Mon")
	f.schedules.EXPECT().FindByCollector(ctx, f.collectorID).Return([]*entity.Schedule{done, open}, nil)
	f.schedules.EXPECT().FindByID(ctx, done.ID).Return(done, nil)

	_, err := f.svc.CompleteStop(ctx, f.collectorID, entity.Stop{ScheduleID: done.ID})
	require.NoError(t, err)

	missed, err := f.svc.MarkRemainingAsMissed(ctx, f.collectorID)
	require.NoError(t, err)
	assert.Equal(t, 1, missed)

	got, _ := f.statuses.status(open.ID, "Side St", monday)
	assert.Equal(t, entity.StatusMissed, got)
}

func TestRoute_MarkStop_FallsBackToStreetLookup(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	s := f.schedule("Main St", "Mon")
	stale := uuid.New()

	f.schedules.EXPECT().FindByID(ctx, stale).Return(nil, repository.ErrScheduleNotFound)
	f.schedules.EXPECT().FindByStreetAndArea(ctx, "Main St", "San Isidro").Return(s, nil)

	record, err := f.svc.SkipStop(ctx, f.collectorID, entity.Stop{ScheduleID: stale, StreetName: "  Main   St ", Barangay: "San Isidro"})

	require.NoError(t, err)
	assert.Equal(t, s.ID, record.ScheduleID)
	assert.Equal(t, entity.StatusSkipped, record.Status)
}

func TestRoute_MarkStop_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown stop", func(t *testing.T) {
		f := newRouteFixture(t)
		id := uuid.New()
		f.schedules.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrScheduleNotFound)

		_, err := f.svc.CompleteStop(ctx, f.collectorID, entity.Stop{ScheduleID: id})
		assert.ErrorIs(t, err, domainerrors.ErrScheduleNotFound)
	})

	t.Run("other collector's stop", func(t *testing.T) {
		f := newRouteFixture(t)
		s := f.schedule("Main St", "Mon")
		s.CollectorID = uuid.New()
		f.schedules.EXPECT().FindByID(ctx, s.ID).Return(s, nil)

		_, err := f.svc.CompleteStop(ctx, f.collectorID, entity.Stop{ScheduleID: s.ID})
		assert.ErrorIs(t, err, domainerrors.ErrScheduleNotAssigned)
	})

	t.Run("write failure", func(t *testing.T) {
		f := newRouteFixture(t)
		s := f.schedule("Main St", "Mon")
		f.statuses.fail = errors.New("connection reset")
		f.schedules.EXPECT().FindByID(ctx, s.ID).Return(s, nil)

		_, err := f.svc.CompleteStop(ctx, f.collectorID, entity.Stop{ScheduleID: s.ID})
		assert.ErrorIs(t, err, domainerrors.ErrRouteStatusUpdateFailed)
	})
}

func TestRoute_GetRouteStatus_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	clock, _ := manilaClock(t, monday+" 10:00")
	collectorID := uuid.New()
	s := &entity.Schedule{ID: uuid.New(), CollectorID: collectorID, StreetName: "Main St", Barangay: "San Isidro", Days: []string{"Mon"}}

	schedules := mockRepo.NewMockScheduleRepository(t)
	statuses := mockRepo.NewMockCollectionStatusRepository(t)
	svc := newRouteService(RouteServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		ScheduleRepo: schedules,
		StatusRepo:   statuses,
		Config:       testConfig(),
		Logger:       discardLogger,
	}, clock.Now)

	schedules.EXPECT().FindByID(ctx, s.ID).Return(s, nil)
	statuses.EXPECT().FindByCollectorAndDate(ctx, collectorID, monday).Return(nil, nil).Once()
	statuses.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.CollectionStatusRecord")).Return(true, nil).Once()

	stop := entity.Stop{ScheduleID: s.ID}
	_, found, err := svc.GetRouteStatus(ctx, collectorID, stop)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = svc.CompleteStop(ctx, collectorID, stop)
	require.NoError(t, err)

	status, found, err := svc.GetRouteStatus(ctx, collectorID, stop)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.StatusCollected, status)

	// Once the entry expires the repository is asked again.
	clock.Advance(time.Minute)
	statuses.EXPECT().FindByCollectorAndDate(ctx, collectorID, monday).Return(nil, nil).Once()
	_, found, err = svc.GetRouteStatus(ctx, collectorID, stop)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRoute_GetTodayRouteAndGeoJSON(t *testing.T) {
	f := newRouteFixture(t)
	ctx := context.Background()
	done := f.schedule("Main St", "Mon")
	done.Route = orb.LineString{{121.0760, 14.6830}, {121.0770, 14.6840}}
	open := f.schedule("Side St", "Mon")
	open.Route = orb.LineString{{121.0780, 14.6850}, {121.0790, 14.6860}}
	noLine := f.schedule("Back St", "Mon")
	f.schedules.EXPECT().FindByCollector(ctx, f.collectorID).Return([]*entity.Schedule{done, open, noLine, f.schedule("Market Rd", "Tue")}, nil)
	f.schedules.EXPECT().FindByID(ctx, done.ID).Return(done, nil)

	_, err := f.svc.CompleteStop(ctx, f.collectorID, entity.Stop{ScheduleID: done.ID})
	require.NoError(t, err)

	route, err := f.svc.GetTodayRoute(ctx, f.collectorID)
	require.NoError(t, err)
	assert.Equal(t, monday, route.Date)
	assert.Len(t, route.Stops, 3)
	require.Len(t, route.Remaining, 2)
	assert.Equal(t, entity.StatusPending, route.Remaining[0].Status)

	fc, err := f.svc.TodayRouteGeoJSON(ctx, f.collectorID)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	feature := fc.Features[0]
	assert.Equal(t, open.ID.String(), feature.Properties["schedule_id"])
	assert.Equal(t, "Side St", feature.Properties["street"])
	assert.Equal(t, "pending", feature.Properties["status"])
	assert.Equal(t, open.Route, feature.Geometry)
}
