package impl

import (
	"context"
	"log/slog"
	"time"

	"wastetrack/config"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/metrics"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// DefaultSkipReason is recorded when a truck is reported full.
const DefaultSkipReason = "full"

// routeService implements the RouteUsecase interface.
type routeService struct {
	txManager    repository.TransactionManager
	scheduleRepo repository.ScheduleRepository
	statusRepo   repository.CollectionStatusRepository
	cache        *routeStatusCache
	loc          *time.Location
	now          func() time.Time
	logger       *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ScheduleRepo repository.ScheduleRepository
	StatusRepo   repository.CollectionStatusRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return newRouteService(params, time.Now)
}

func newRouteService(params RouteServiceParams, now func() time.Time) *routeService {
	return &routeService{
		txManager:    params.TxManager,
		scheduleRepo: params.ScheduleRepo,
		statusRepo:   params.StatusRepo,
		cache:        newRouteStatusCache(params.Config.Route.StatusCacheTTL),
		loc:          params.Config.Location(),
		now:          now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *routeService) localNow() time.Time {
	return srv.now().In(srv.loc)
}

// CompleteStop marks the stop collected for today.
func (srv *routeService) CompleteStop(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (*entity.CollectionStatusRecord, error) {
	return srv.markStop(ctx, collectorID, stop, entity.StatusCollected)
}

// SkipStop marks the stop skipped for today.
func (srv *routeService) SkipStop(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (*entity.CollectionStatusRecord, error) {
	return srv.markStop(ctx, collectorID, stop, entity.StatusSkipped)
}

func (srv *routeService) markStop(ctx context.Context, collectorID uuid.UUID, stop entity.Stop, status entity.CollectionStatus) (*entity.CollectionStatusRecord, error) {
	schedule, err := srv.resolveSchedule(ctx, stop)
	if err != nil {
		return nil, err
	}
	if schedule.CollectorID != collectorID {
		return nil, domainerrors.ErrScheduleNotAssigned
	}

	now := srv.localNow()
	record := newStatusRecord(schedule, stop.Barangay, now.Format(entity.DateLayout), status, now, &collectorID)
	if _, err := srv.statusRepo.Upsert(ctx, record); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRouteStatusUpdateFailed, err.Error())
	}
	metrics.RouteStatusWrites.WithLabelValues(status.String()).Inc()
	srv.cache.apply(collectorID, record)

	srv.log(ctx).Info("Route stop marked",
		slog.String("collector_id", collectorID.String()),
		slog.String("schedule_id", schedule.ID.String()),
		slog.String("street", record.StreetName),
		slog.String("status", status.String()),
	)

	return record, nil
}

// resolveSchedule finds the schedule by id, falling back to the street and area names.
func (srv *routeService) resolveSchedule(ctx context.Context, stop entity.Stop) (*entity.Schedule, error) {
	if stop.ScheduleID != uuid.Nil {
		schedule, err := srv.scheduleRepo.FindByID(ctx, stop.ScheduleID)
		if err == nil {
			return schedule, nil
		}
		if !errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, errors.Wrap(err, "failed to load schedule")
		}
	}

	street := entity.CanonicalName(stop.StreetName)
	if street == "" {
		return nil, domainerrors.ErrScheduleNotFound
	}

	schedule, err := srv.scheduleRepo.FindByStreetAndArea(ctx, street, entity.CanonicalName(stop.Barangay))
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to load schedule")
	}

	return schedule, nil
}

// newStatusRecord builds the status row of a schedule's stop on date. A nil markedBy
// means the row was written by the sweep.
func newStatusRecord(
	schedule *entity.Schedule,
	fallbackArea string,
	date string,
	status entity.CollectionStatus,
	now time.Time,
	markedBy *uuid.UUID,
) *entity.CollectionStatusRecord {
	area := schedule.CanonicalArea()
	if area == "" {
		area = entity.CanonicalName(fallbackArea)
	}
	markedAt := now.UTC()

	return &entity.CollectionStatusRecord{
		ID:             uuid.New(),
		ScheduleID:     schedule.ID,
		StreetName:     schedule.CanonicalStreet(),
		StreetID:       schedule.StreetID,
		BarangayName:   area,
		CollectorID:    schedule.CollectorID,
		CollectionDate: date,
		Status:         status,
		MarkedAt:       &markedAt,
		MarkedBy:       markedBy,
		CreatedAt:      markedAt,
		UpdatedAt:      markedAt,
	}
}

// todaySchedules returns the collector's schedules running on the day of t.
func (srv *routeService) todaySchedules(ctx context.Context, collectorID uuid.UUID, t time.Time) ([]*entity.Schedule, error) {
	schedules, err := srv.scheduleRepo.FindByCollector(ctx, collectorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collector schedules")
	}

	today := make([]*entity.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.RunsOn(t) {
			today = append(today, schedule)
		}
	}

	return today, nil
}

// RecordRemainingAsSkipped writes "skipped" for every stop scheduled today that is absent,
// pending or collected. A truck reported full supersedes earlier completions.
func (srv *routeService) RecordRemainingAsSkipped(ctx context.Context, collectorID uuid.UUID, truckID, reason string) (int, error) {
	if reason == "" {
		reason = DefaultSkipReason
	}

	now := srv.localNow()
	schedules, err := srv.todaySchedules(ctx, collectorID, now)
	if err != nil {
		return 0, err
	}

	written, err := srv.writeGuarded(ctx, collectorID, schedules, now.Format(entity.DateLayout), entity.StatusSkipped, &collectorID, entity.FullTruckReplaceableStatuses())
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Remaining stops recorded as skipped",
		slog.String("collector_id", collectorID.String()),
		slog.String("truck_id", truckID),
		slog.String("reason", reason),
		slog.Int("stops", len(schedules)),
		slog.Int("written", written),
	)

	return written, nil
}

// MarkRemainingAsMissed escalates today's absent or pending stops of the collector to missed.
func (srv *routeService) MarkRemainingAsMissed(ctx context.Context, collectorID uuid.UUID) (int, error) {
	now := srv.localNow()
	schedules, err := srv.todaySchedules(ctx, collectorID, now)
	if err != nil {
		return 0, err
	}

	missed, err := srv.writeGuarded(ctx, collectorID, schedules, now.Format(entity.DateLayout), entity.StatusMissed, nil, entity.SweepReplaceableStatuses())
	if err != nil {
		return 0, err
	}
	metrics.StopsSweptMissed.Add(float64(missed))

	return missed, nil
}

// writeGuarded upserts status for each schedule in one transaction, replacing only rows whose
// current status is in replaceable. It returns the number of rows written.
func (srv *routeService) writeGuarded(
	ctx context.Context,
	collectorID uuid.UUID,
	schedules []*entity.Schedule,
	date string,
	status entity.CollectionStatus,
	markedBy *uuid.UUID,
	replaceable []entity.CollectionStatus,
) (int, error) {
	if len(schedules) == 0 {
		return 0, nil
	}

	now := srv.now()
	written := 0
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		statusRepo := factory.NewCollectionStatusRepository()
		written = 0
		for _, schedule := range schedules {
			record := newStatusRecord(schedule, "", date, status, now, markedBy)
			applied, err := statusRepo.Upsert(ctx, record, replaceable...)
			if err != nil {
				return errors.Wrapf(err, "failed to write %s for schedule %s", status, schedule.ID)
			}
			if applied {
				written++
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrRouteStatusUpdateFailed, err.Error())
	}

	metrics.RouteStatusWrites.WithLabelValues(status.String()).Add(float64(written))
	srv.cache.invalidate(collectorID)

	return written, nil
}

// SweepDay applies the missed escalation to every collector with stops on date.
// An empty date sweeps today.
func (srv *routeService) SweepDay(ctx context.Context, date string) (*usecase.SweepResult, error) {
	if date == "" {
		date = srv.localNow().Format(entity.DateLayout)
	}
	day, err := time.ParseInLocation(entity.DateLayout, date, srv.loc)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidDate, err.Error())
	}

	schedules, err := srv.scheduleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load schedules")
	}

	byCollector := make(map[uuid.UUID][]*entity.Schedule)
	order := make([]uuid.UUID, 0)
	for _, schedule := range schedules {
		if !schedule.RunsOn(day) {
			continue
		}
		if _, ok := byCollector[schedule.CollectorID]; !ok {
			order = append(order, schedule.CollectorID)
		}
		byCollector[schedule.CollectorID] = append(byCollector[schedule.CollectorID], schedule)
	}

	result := &usecase.SweepResult{Date: date, Collectors: len(order)}
	var errs []error
	for _, collectorID := range order {
		missed, err := srv.writeGuarded(ctx, collectorID, byCollector[collectorID], date, entity.StatusMissed, nil, entity.SweepReplaceableStatuses())
		if err != nil {
			result.Failed++
			errs = append(errs, err)
			srv.log(ctx).Error("Sweep failed for collector",
				slog.String("collector_id", collectorID.String()),
				slog.Any("error", err),
			)

			continue
		}
		result.Missed += missed
	}
	metrics.StopsSweptMissed.Add(float64(result.Missed))

	return result, errors.Join(errs...)
}

// statusesFor returns the collector's rows for date, served from the cache while fresh.
func (srv *routeService) statusesFor(ctx context.Context, collectorID uuid.UUID, date string) ([]*entity.CollectionStatusRecord, error) {
	now := srv.now()
	if records, ok := srv.cache.get(collectorID, date, now); ok {
		return records, nil
	}

	records, err := srv.statusRepo.FindByCollectorAndDate(ctx, collectorID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collection statuses")
	}
	srv.cache.store(collectorID, date, records, now)

	return records, nil
}

// GetRouteStatus returns the resolved status of the stop for today.
func (srv *routeService) GetRouteStatus(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (entity.CollectionStatus, bool, error) {
	schedule, err := srv.resolveSchedule(ctx, stop)
	if err != nil {
		return "", false, err
	}

	today := srv.localNow().Format(entity.DateLayout)
	records, err := srv.statusesFor(ctx, collectorID, today)
	if err != nil {
		return "", false, err
	}

	status, ok := entity.LookupRouteStatus(records, schedule.ID, schedule.CanonicalStreet(), today)

	return status, ok, nil
}

// GetTodayRoute lists today's stops for the collector with their current status.
func (srv *routeService) GetTodayRoute(ctx context.Context, collectorID uuid.UUID) (*entity.TodayRoute, error) {
	now := srv.localNow()
	today := now.Format(entity.DateLayout)

	schedules, err := srv.todaySchedules(ctx, collectorID, now)
	if err != nil {
		return nil, err
	}

	records, err := srv.statusesFor(ctx, collectorID, today)
	if err != nil {
		return nil, err
	}

	route := &entity.TodayRoute{
		CollectorID: collectorID,
		Date:        today,
		Stops:       make([]*entity.RouteStop, 0, len(schedules)),
		Remaining:   make([]*entity.RouteStop, 0, len(schedules)),
	}
	for _, schedule := range schedules {
		stop := &entity.RouteStop{
			Schedule: schedule,
			Street:   schedule.CanonicalStreet(),
			Status:   entity.StatusPending,
		}
		if status, ok := entity.LookupRouteStatus(records, schedule.ID, stop.Street, today); ok {
			stop.Status = status
		}

		route.Stops = append(route.Stops, stop)
		if !stop.Status.IsResolved() {
			route.Remaining = append(route.Remaining, stop)
		}
	}

	return route, nil
}

// TodayRouteGeoJSON exports the route lines of the stops still remaining today.
func (srv *routeService) TodayRouteGeoJSON(ctx context.Context, collectorID uuid.UUID) (*geojson.FeatureCollection, error) {
	route, err := srv.GetTodayRoute(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, stop := range route.Remaining {
		if len(stop.Schedule.Route) < 2 {
			continue
		}

		feature := geojson.NewFeature(stop.Schedule.Route)
		feature.ID = stop.Schedule.ID.String()
		feature.Properties["schedule_id"] = stop.Schedule.ID.String()
		feature.Properties["label"] = stop.Schedule.DisplayName()
		feature.Properties["street"] = stop.Street
		feature.Properties["barangay"] = stop.Schedule.CanonicalArea()
		feature.Properties["collection_time"] = stop.Schedule.CollectionTime
		feature.Properties["status"] = stop.Status.String()
		fc.Append(feature)
	}

	return fc, nil
}
