package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/errors"
	"wastetrack/internal/geo"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// truckService implements the TruckUsecase interface.
type truckService struct {
	txManager repository.TransactionManager
	truckRepo repository.TruckStatusRepository
	routes    usecase.RouteUsecase
	notifier  usecase.NotifierUsecase
	now       func() time.Time
	logger    *slog.Logger
}

// TruckServiceParams holds dependencies for TruckService, injected by Fx.
type TruckServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TruckRepo repository.TruckStatusRepository
	Routes    usecase.RouteUsecase
	Notifier  usecase.NotifierUsecase
	Logger    *slog.Logger
}

// NewTruckService is the constructor for truckService.
func NewTruckService(params TruckServiceParams) usecase.TruckUsecase {
	return &truckService{
		txManager: params.TxManager,
		truckRepo: params.TruckRepo,
		routes:    params.Routes,
		notifier:  params.Notifier,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *truckService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mutate reads the truck row, applies fn and writes it back in one transaction.
// It returns the status before and after the change.
func (srv *truckService) mutate(
	ctx context.Context,
	collectorID uuid.UUID,
	truckID string,
	fn func(status *entity.TruckStatus),
) (before, after *entity.TruckStatus, err error) {
	truckID = strings.TrimSpace(truckID)
	if truckID == "" {
		return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("truck id is required")
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		truckRepo := factory.NewTruckStatusRepository()

		current, err := truckRepo.FindByID(ctx, truckID)
		switch {
		case errors.Is(err, repository.ErrTruckStatusNotFound):
			current = &entity.TruckStatus{TruckID: truckID}
		case err != nil:
			return err
		}

		previous := *current
		before = &previous

		fn(current)
		current.UpdatedAt = srv.now().UTC()
		current.UpdatedBy = collectorID

		if err := truckRepo.Upsert(ctx, current); err != nil {
			return err
		}
		after = current

		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrTruckUpdateFailed, err.Error())
	}

	return before, after, nil
}

// UpdatePosition records a GPS fix and marks the truck as collecting.
func (srv *truckService) UpdatePosition(ctx context.Context, collectorID uuid.UUID, truckID string, position usecase.Coordinates) (*entity.TruckStatus, error) {
	if !geo.IsValidCoordinate(position.Latitude, position.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	_, status, err := srv.mutate(ctx, collectorID, truckID, func(status *entity.TruckStatus) {
		lat, lng := position.Latitude, position.Longitude
		status.Latitude = &lat
		status.Longitude = &lng
		status.IsCollecting = true
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// StartCollecting clears the full flag and announces collection to residents on the
// transition into collecting.
func (srv *truckService) StartCollecting(ctx context.Context, collectorID uuid.UUID, truckID string) (*entity.TruckStatus, error) {
	before, status, err := srv.mutate(ctx, collectorID, truckID, func(status *entity.TruckStatus) {
		status.IsFull = false
		status.IsCollecting = true
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Collection started",
		slog.String("truck_id", status.TruckID),
		slog.String("collector_id", collectorID.String()),
	)

	if !before.IsCollecting {
		if _, err := srv.notifier.NotifyAllResidentsCollectionStarted(ctx); err != nil {
			srv.log(ctx).Warn("Collection started broadcast incomplete", slog.Any("error", err))
		}
	}

	return status, nil
}

// StopCollecting ends the collecting session. Route statuses are left untouched so the
// collector can resume later the same day.
func (srv *truckService) StopCollecting(ctx context.Context, collectorID uuid.UUID, truckID string, clearPosition bool) (*entity.TruckStatus, error) {
	_, status, err := srv.mutate(ctx, collectorID, truckID, func(status *entity.TruckStatus) {
		status.IsCollecting = false
		if clearPosition {
			status.Latitude = nil
			status.Longitude = nil
		}
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Collection stopped",
		slog.String("truck_id", status.TruckID),
		slog.Bool("position_cleared", clearPosition),
	)

	return status, nil
}

// MarkFull flags the truck full, stops collecting and records the rest of today's route
// as skipped. The truck update is kept when the route write fails.
func (srv *truckService) MarkFull(ctx context.Context, collectorID uuid.UUID, truckID string) (*entity.TruckStatus, int, error) {
	_, status, err := srv.mutate(ctx, collectorID, truckID, func(status *entity.TruckStatus) {
		status.IsFull = true
		status.IsCollecting = false
	})
	if err != nil {
		return nil, 0, err
	}

	skipped, err := srv.routes.RecordRemainingAsSkipped(ctx, collectorID, status.TruckID, DefaultSkipReason)
	if err != nil {
		return status, 0, err
	}

	return status, skipped, nil
}

// GetStatus returns the truck status.
func (srv *truckService) GetStatus(ctx context.Context, truckID string) (*entity.TruckStatus, error) {
	status, err := srv.truckRepo.FindByID(ctx, strings.TrimSpace(truckID))
	if err != nil {
		if errors.Is(err, repository.ErrTruckStatusNotFound) {
			return nil, domainerrors.ErrTruckNotFound
		}

		return nil, errors.Wrap(err, "failed to load truck status")
	}

	return status, nil
}

// ListActive returns the collecting trucks with a known position.
func (srv *truckService) ListActive(ctx context.Context) ([]*entity.TruckStatus, error) {
	trucks, err := srv.truckRepo.FindCollecting(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collecting trucks")
	}

	return trucks, nil
}
