package impl

import (
	"context"
	"testing"
	"time"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	"wastetrack/internal/geo"
	"wastetrack/internal/infra/cache"
	mockRepo "wastetrack/internal/mocks/repository"
	mockSvc "wastetrack/internal/mocks/service"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notifierFixture struct {
	svc       *notifierService
	feed      *feed
	accounts  *mockRepo.MockAccountRepository
	schedules *mockRepo.MockScheduleRepository
	reports   *mockRepo.MockReportRepository
	trucks    *truckStore
	publisher *mockSvc.MockEventPublisher
	clock     *testClock
}

// newNotifierFixture builds the service under test; a nil counters uses the in-memory store.
func newNotifierFixture(t *testing.T, counters service.CounterStore) *notifierFixture {
	t.Helper()

	clock, _ := manilaClock(t, "2026-10-19 07:30") // Monday
	f := &notifierFixture{
		feed:      &feed{},
		accounts:  mockRepo.NewMockAccountRepository(t),
		schedules: mockRepo.NewMockScheduleRepository(t),
		reports:   mockRepo.NewMockReportRepository(t),
		trucks:    newTruckStore(),
		publisher: mockSvc.NewMockEventPublisher(t),
		clock:     clock,
	}
	f.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	params := NotifierServiceParams{
		AccountRepo:      f.accounts,
		ScheduleRepo:     f.schedules,
		ReportRepo:       f.reports,
		TruckRepo:        f.trucks,
		NotificationRepo: f.feed,
		Counters:         counters,
		Publisher:        f.publisher,
		Config:           testConfig(),
		Logger:           discardLogger,
	}
	if counters == nil {
		params.Counters = cache.NewMemoryCounterStore()
	}
	f.svc = newNotifierService(params, clock.Now)

	return f
}

var resident = usecase.Coordinates{Latitude: 14.6830, Longitude: 121.0762}

func truckAt(lat float64) usecase.Coordinates {
	return usecase.Coordinates{Latitude: lat, Longitude: 121.0762}
}

func TestNotifier_CheckTruckProximity_NearbyTruckNotifies(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	err := f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truckAt(14.6834), "Juan")
	require.NoError(t, err)

	n := f.feed.last()
	require.NotNil(t, n)
	assert.Contains(t, n.Title, "Truck Nearby")
	assert.Equal(t, "Garbage truck TRUCK-01 (Juan) is about 44m from your location.", n.Message)
	assert.Equal(t, entity.NotificationInfo, n.Type)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/resident/track", *n.Link)
}

func TestNotifier_CheckTruckProximity_FarTruckClearsState(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truckAt(14.6834), ""))
	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01",
		usecase.Coordinates{Latitude: 14.700, Longitude: 121.100}, ""))

	assert.Len(t, f.feed.titles(userID), 1)
	state := f.svc.states.acquire(userID)
	_, notified := state.notifiedTrucks["TRUCK-01"]
	state.release()
	assert.False(t, notified)
}

func TestNotifier_CheckTruckProximity_FiresOncePerRadiusEntry(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	// ~500m, ~300m, ~300m, ~500m, ~300m
	samples := []float64{14.6875, 14.6857, 14.6857, 14.6875, 14.6857}
	emitted := make([]int, 0, len(samples))
	for _, lat := range samples {
		require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truckAt(lat), "crew"))
		emitted = append(emitted, len(f.feed.titles(userID)))
	}

	assert.Equal(t, []int{0, 1, 1, 1, 2}, emitted)
}

func TestNotifier_CheckTruckProximity_BoundaryIsInclusive(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	truck := truckAt(14.6834)

	f.svc.radiusMeters = geo.DistanceMeters(resident.Latitude, resident.Longitude, truck.Latitude, truck.Longitude)
	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truck, ""))

	assert.Len(t, f.feed.titles(userID), 1)
}

func TestNotifier_CheckTruckProximity_TrucksAreTrackedSeparately(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()

	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truckAt(14.6834), ""))
	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-02", truckAt(14.6834), ""))
	require.NoError(t, f.svc.CheckTruckProximity(ctx, other, resident, "TRUCK-01", truckAt(14.6834), ""))

	assert.Len(t, f.feed.titles(userID), 2)
	assert.Len(t, f.feed.titles(other), 1)
}

func TestNotifier_CheckTruckProximity_InvalidCoordinatesAreIgnored(t *testing.T) {
	f := newNotifierFixture(t, nil)
	userID := uuid.New()

	err := f.svc.CheckTruckProximity(context.Background(), userID, usecase.Coordinates{Latitude: 91, Longitude: 0}, "TRUCK-01", truckAt(14.6834), "")

	require.NoError(t, err)
	assert.Empty(t, f.feed.titles(userID))
}

func TestNotifier_CheckTruckProximity_StoreFailureKeepsTruckUnnotified(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	f.feed.fail = errors.New("db down")

	err := f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truckAt(14.6834), "")
	require.Error(t, err)

	f.feed.fail = nil
	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-01", truckAt(14.6834), ""))
	assert.Len(t, f.feed.titles(userID), 1)
}

func TestNotifier_CheckNearbyTrucks(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	collectorID := uuid.New()

	require.NoError(t, f.trucks.Upsert(ctx, &entity.TruckStatus{
		TruckID: "TRUCK-01", IsCollecting: true, Latitude: ptr(14.6834), Longitude: ptr(121.0762), UpdatedBy: collectorID,
	}))
	require.NoError(t, f.trucks.Upsert(ctx, &entity.TruckStatus{
		TruckID: "TRUCK-02", IsCollecting: true, Latitude: ptr(14.700), Longitude: ptr(121.100), UpdatedBy: collectorID,
	}))
	require.NoError(t, f.trucks.Upsert(ctx, &entity.TruckStatus{TruckID: "TRUCK-03", IsCollecting: true}))
	f.accounts.EXPECT().FindByID(ctx, collectorID).Return(&entity.Account{ID: collectorID, Name: "Crew A"}, nil).Once()

	nearby, err := f.svc.CheckNearbyTrucks(ctx, userID, resident)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	byID := map[string]*usecase.NearbyTruck{}
	for _, n := range nearby {
		byID[n.TruckID] = n
	}
	assert.True(t, byID["TRUCK-01"].InRadius)
	assert.InDelta(t, 44, byID["TRUCK-01"].DistanceMeters, 1)
	assert.False(t, byID["TRUCK-02"].InRadius)
	assert.Equal(t, []string{"Truck Nearby"}, f.feed.titles(userID))
	assert.Contains(t, f.feed.last().Message, "(Crew A)")
}

func TestNotifier_CheckNearbyTrucks_InvalidResident(t *testing.T) {
	f := newNotifierFixture(t, nil)

	_, err := f.svc.CheckNearbyTrucks(context.Background(), uuid.New(), usecase.Coordinates{Latitude: 14, Longitude: 190})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func mondaySchedule(area, label, at string) *entity.Schedule {
	return &entity.Schedule{
		ID:             uuid.New(),
		CollectorID:    uuid.New(),
		Label:          label,
		StreetName:     label,
		Barangay:       area,
		Days:           []string{"Mon", "Thu"},
		CollectionTime: at,
	}
}

func TestNotifier_NotifyTodaySchedule(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	f.accounts.EXPECT().FindByID(ctx, userID).Return(&entity.Account{ID: userID, Role: entity.RoleResident, Barangay: "San Isidro"}, nil)
	tuesdayOnly := mondaySchedule("San Isidro", "Side St", "09:00")
	tuesdayOnly.Days = []string{"Tue"}
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{
		mondaySchedule("San Isidro", "Main St", "07:00"),
		mondaySchedule("Poblacion", "Rizal Ave", "08:00"),
		tuesdayOnly,
	}, nil)

	require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))

	n := f.feed.last()
	require.NotNil(t, n)
	assert.Equal(t, "Today's Collection Schedule", n.Title)
	assert.Equal(t, "Collection in San Isidro today: Main St at 07:00.", n.Message)
	assert.Equal(t, "/resident?panel=schedule", *n.Link)
}

func TestNotifier_NotifyTodaySchedule_DailyCap(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	f.accounts.EXPECT().FindByID(ctx, userID).Return(&entity.Account{ID: userID, Barangay: "San Isidro"}, nil)
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{mondaySchedule("San Isidro", "Main St", "07:00")}, nil)

	for range 5 {
		require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))
	}
	assert.Len(t, f.feed.titles(userID), 3)

	// The counter resets on the next local day.
	f.clock.Advance(72 * time.Hour) // Thursday
	require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))
	assert.Len(t, f.feed.titles(userID), 4)
}

func TestNotifier_NotifyTodaySchedule_RestoresCounterFromStore(t *testing.T) {
	counters := mockSvc.NewMockCounterStore(t)
	f := newNotifierFixture(t, counters)
	ctx := context.Background()
	userID := uuid.New()
	key := "schedule_notified:" + userID.String() + ":2026-10-19"

	f.accounts.EXPECT().FindByID(ctx, userID).Return(&entity.Account{ID: userID, Barangay: "San Isidro"}, nil)
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{mondaySchedule("San Isidro", "Main St", "07:00")}, nil)
	counters.EXPECT().Get(ctx, key).Return(2, nil).Once()
	counters.EXPECT().Increment(ctx, key, scheduleCounterTTL).Return(3, nil).Once()

	require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))
	require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))

	assert.Len(t, f.feed.titles(userID), 1)
}

func TestNotifier_NotifyTodaySchedule_AreaFromLastFix(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	f.accounts.EXPECT().FindByID(ctx, userID).Return(&entity.Account{ID: userID}, nil)
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{mondaySchedule("san isidro", "Main St", "07:00")}, nil)

	// No area and no fix yet: nothing to announce.
	require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))
	assert.Empty(t, f.feed.titles(userID))

	require.NoError(t, f.svc.CheckTruckProximity(ctx, userID, resident, "TRUCK-09", truckAt(14.7200), ""))
	require.NoError(t, f.svc.NotifyTodaySchedule(ctx, userID))
	assert.Equal(t, []string{"Today's Collection Schedule"}, f.feed.titles(userID))
}

func TestNotifier_NotifyTodaySchedule_UnknownAccount(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	f.accounts.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrAccountNotFound)

	err := f.svc.NotifyTodaySchedule(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestNotifier_CheckReportStatusChanges(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	reportID := uuid.New()

	statuses := []entity.ReportStatus{
		entity.ReportPending,  // baseline
		entity.ReportPending,  // unchanged
		entity.ReportReviewed, // under review
		entity.ReportResolved, // resolved
		entity.ReportPending,  // reopened
	}
	for _, status := range statuses {
		f.reports.EXPECT().FindByUser(ctx, userID).
			Return([]*entity.Report{{ID: reportID, UserID: userID, Title: "Missed pickup", Status: status}}, nil).Once()
		require.NoError(t, f.svc.CheckReportStatusChanges(ctx, userID))
	}

	assert.Equal(t, []string{"Report Under Review", "Report Resolved", "Report Reopened"}, f.feed.titles(userID))
	assert.Equal(t, entity.NotificationInfo, f.feed.last().Type)
}

func TestNotifier_InitializeResidentNotifications_SeedsBaseline(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	report := &entity.Report{ID: uuid.New(), UserID: userID, Title: "Dumping", Status: entity.ReportReviewed}

	f.accounts.EXPECT().FindByID(ctx, userID).Return(&entity.Account{ID: userID, Barangay: "Poblacion"}, nil)
	f.schedules.EXPECT().FindAll(ctx).Return(nil, nil)
	f.reports.EXPECT().FindByUser(ctx, userID).Return([]*entity.Report{report}, nil)

	require.NoError(t, f.svc.InitializeResidentNotifications(ctx, userID))
	require.NoError(t, f.svc.CheckReportStatusChanges(ctx, userID))

	assert.Empty(t, f.feed.titles(userID))
}

func TestNotifier_NotifyAllResidentsCollectionStarted(t *testing.T) {
	f := newNotifierFixture(t, nil)
	ctx := context.Background()
	capped := uuid.New()
	fresh := uuid.New()

	f.accounts.EXPECT().FindByRole(ctx, entity.RoleResident).Return([]*entity.Account{{ID: capped}, {ID: fresh}}, nil)
	f.accounts.EXPECT().FindByID(ctx, capped).Return(&entity.Account{ID: capped, Barangay: "San Isidro"}, nil)
	f.schedules.EXPECT().FindAll(ctx).Return([]*entity.Schedule{mondaySchedule("San Isidro", "Main St", "07:00")}, nil)
	for range 3 {
		require.NoError(t, f.svc.NotifyTodaySchedule(ctx, capped))
	}

	notified, err := f.svc.NotifyAllResidentsCollectionStarted(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, notified)
	assert.Equal(t, []string{"Collection Started"}, f.feed.titles(fresh))
	assert.Len(t, f.feed.titles(capped), 3)
}

func TestNotifier_PublishFailureDoesNotFailEmit(t *testing.T) {
	clock, _ := manilaClock(t, "2026-10-19 07:30")
	publisher := mockSvc.NewMockEventPublisher(t)
	f := &feed{}
	svc := newNotifierService(NotifierServiceParams{
		NotificationRepo: f,
		Counters:         cache.NewMemoryCounterStore(),
		Publisher:        publisher,
		Config:           testConfig(),
		Logger:           discardLogger,
	}, clock.Now)
	userID := uuid.New()

	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *entity.NotificationEvent) bool {
			return e.UserID == userID && e.Link == "/resident/track"
		})).
		Return(errors.New("broker unavailable")).Once()

	require.NoError(t, svc.CheckTruckProximity(context.Background(), userID, resident, "TRUCK-01", truckAt(14.6834), ""))
	assert.Len(t, f.titles(userID), 1)
}
