package impl

import (
	"context"
	"testing"
	"time"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/errors"
	mockUC "wastetrack/internal/mocks/usecase"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type truckFixture struct {
	svc      *truckService
	trucks   *truckStore
	routes   *mockUC.MockRouteUsecase
	notifier *mockUC.MockNotifierUsecase
}

func newTruckFixture(t *testing.T, trucks ...*entity.TruckStatus) *truckFixture {
	t.Helper()

	f := &truckFixture{
		trucks:   newTruckStore(trucks...),
		routes:   mockUC.NewMockRouteUsecase(t),
		notifier: mockUC.NewMockNotifierUsecase(t),
	}
	svc := NewTruckService(TruckServiceParams{
		TxManager: &txRunner{trucks: f.trucks},
		TruckRepo: f.trucks,
		Routes:    f.routes,
		Notifier:  f.notifier,
		Logger:    discardLogger,
	}).(*truckService)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC) }
	f.svc = svc

	return f
}

func TestTruck_UpdatePosition_CreatesTruck(t *testing.T) {
	f := newTruckFixture(t)
	ctx := context.Background()
	collectorID := uuid.New()

	status, err := f.svc.UpdatePosition(ctx, collectorID, " TRUCK-01 ", usecase.Coordinates{Latitude: 14.6834, Longitude: 121.0762})
	require.NoError(t, err)

	assert.Equal(t, "TRUCK-01", status.TruckID)
	assert.True(t, status.IsCollecting)
	assert.True(t, status.HasFix())
	assert.Equal(t, collectorID, status.UpdatedBy)

	stored, err := f.svc.GetStatus(ctx, "TRUCK-01")
	require.NoError(t, err)
	assert.InDelta(t, 14.6834, *stored.Latitude, 1e-9)
}

func TestTruck_UpdatePosition_Validation(t *testing.T) {
	f := newTruckFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdatePosition(ctx, uuid.New(), "TRUCK-01", usecase.Coordinates{Latitude: 100, Longitude: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

	_, err = f.svc.UpdatePosition(ctx, uuid.New(), "  ", usecase.Coordinates{Latitude: 14, Longitude: 121})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTruck_StartCollecting_BroadcastsOnTransitionOnly(t *testing.T) {
	f := newTruckFixture(t, &entity.TruckStatus{TruckID: "TRUCK-01", IsFull: true})
	ctx := context.Background()
	collectorID := uuid.New()

	f.notifier.EXPECT().NotifyAllResidentsCollectionStarted(ctx).Return(12, nil).Once()

	status, err := f.svc.StartCollecting(ctx, collectorID, "TRUCK-01")
	require.NoError(t, err)
	assert.True(t, status.IsCollecting)
	assert.False(t, status.IsFull)

	_, err = f.svc.StartCollecting(ctx, collectorID, "TRUCK-01")
	require.NoError(t, err)
}

func TestTruck_StartCollecting_BroadcastFailureIsNotFatal(t *testing.T) {
	f := newTruckFixture(t)
	ctx := context.Background()

	f.notifier.EXPECT().NotifyAllResidentsCollectionStarted(ctx).Return(3, errors.New("db timeout")).Once()

	status, err := f.svc.StartCollecting(ctx, uuid.New(), "TRUCK-02")

	require.NoError(t, err)
	assert.True(t, status.IsCollecting)
}

func TestTruck_StopCollecting(t *testing.T) {
	ctx := context.Background()

	for _, clear := range []bool{false, true} {
		f := newTruckFixture(t, &entity.TruckStatus{
			TruckID: "TRUCK-01", IsCollecting: true, Latitude: ptr(14.68), Longitude: ptr(121.07),
		})

		status, err := f.svc.StopCollecting(ctx, uuid.New(), "TRUCK-01", clear)
		require.NoError(t, err)

		assert.False(t, status.IsCollecting)
		assert.Equal(t, !clear, status.HasFix())
	}
}

func TestTruck_MarkFull(t *testing.T) {
	f := newTruckFixture(t, &entity.TruckStatus{TruckID: "TRUCK-01", IsCollecting: true})
	ctx := context.Background()
	collectorID := uuid.New()

	f.routes.EXPECT().RecordRemainingAsSkipped(ctx, collectorID, "TRUCK-01", "full").Return(4, nil).Once()

	status, skipped, err := f.svc.MarkFull(ctx, collectorID, "TRUCK-01")
	require.NoError(t, err)

	assert.True(t, status.IsFull)
	assert.False(t, status.IsCollecting)
	assert.Equal(t, 4, skipped)
}

func TestTruck_MarkFull_KeepsTruckUpdateWhenRouteWriteFails(t *testing.T) {
	f := newTruckFixture(t)
	ctx := context.Background()
	collectorID := uuid.New()

	f.routes.EXPECT().RecordRemainingAsSkipped(ctx, collectorID, "TRUCK-01", "full").
		Return(0, domainerrors.ErrRouteStatusUpdateFailed).Once()

	status, _, err := f.svc.MarkFull(ctx, collectorID, "TRUCK-01")
	require.ErrorIs(t, err, domainerrors.ErrRouteStatusUpdateFailed)
	require.NotNil(t, status)

	stored, err := f.svc.GetStatus(ctx, "TRUCK-01")
	require.NoError(t, err)
	assert.True(t, stored.IsFull)
}

func TestTruck_GetStatus_NotFound(t *testing.T) {
	f := newTruckFixture(t)

	_, err := f.svc.GetStatus(context.Background(), "TRUCK-404")

	assert.ErrorIs(t, err, domainerrors.ErrTruckNotFound)
}

func TestTruck_ListActive(t *testing.T) {
	f := newTruckFixture(t,
		&entity.TruckStatus{TruckID: "TRUCK-01", IsCollecting: true, Latitude: ptr(14.68), Longitude: ptr(121.07)},
		&entity.TruckStatus{TruckID: "TRUCK-02", IsCollecting: false, Latitude: ptr(14.68), Longitude: ptr(121.07)},
		&entity.TruckStatus{TruckID: "TRUCK-03", IsCollecting: true},
	)

	trucks, err := f.svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, trucks, 1)
	assert.Equal(t, "TRUCK-01", trucks[0].TruckID)
}
