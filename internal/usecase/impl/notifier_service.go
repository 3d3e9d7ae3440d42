// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wastetrack/config"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	"wastetrack/internal/geo"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	trackingLink      = "/resident/track"
	schedulePanelLink = "/resident?panel=schedule"
	reportsLink       = "/resident/reports"

	// Daily counter keys outlive their day so a late restart still sees them.
	scheduleCounterTTL = 48 * time.Hour
)

// notifierService implements the NotifierUsecase interface.
type notifierService struct {
	accountRepo  repository.AccountRepository
	scheduleRepo repository.ScheduleRepository
	reportRepo   repository.ReportRepository
	truckRepo    repository.TruckStatusRepository
	counters     service.CounterStore
	emitter      *notificationEmitter
	states       *stateRegistry

	radiusMeters float64
	dailyCap     int
	zoneMatchKm  float64
	zones        []geo.Zone
	loc          *time.Location
	now          func() time.Time
	logger       *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	ScheduleRepo     repository.ScheduleRepository
	ReportRepo       repository.ReportRepository
	TruckRepo        repository.TruckStatusRepository
	NotificationRepo repository.NotificationRepository
	Counters         service.CounterStore
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotifierService is the constructor for notifierService.
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return newNotifierService(params, time.Now)
}

func newNotifierService(params NotifierServiceParams, now func() time.Time) *notifierService {
	cfg := params.Config.Notifier

	zones := make([]geo.Zone, 0, len(cfg.Zones))
	for _, z := range cfg.Zones {
		zones = append(zones, geo.Zone{Name: z.Name, Center: orb.Point{z.Longitude, z.Latitude}})
	}

	return &notifierService{
		accountRepo:  params.AccountRepo,
		scheduleRepo: params.ScheduleRepo,
		reportRepo:   params.ReportRepo,
		truckRepo:    params.TruckRepo,
		counters:     params.Counters,
		emitter: &notificationEmitter{
			repo:      params.NotificationRepo,
			publisher: params.Publisher,
			logger:    params.Logger,
			now:       now,
		},
		states:       newStateRegistry(),
		radiusMeters: cfg.ProximityRadiusMeters,
		dailyCap:     cfg.DailyScheduleCap,
		zoneMatchKm:  cfg.ZoneMatchKm,
		zones:        zones,
		loc:          params.Config.Location(),
		now:          now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notifierService) localNow() time.Time {
	return srv.now().In(srv.loc)
}

// CheckTruckProximity emits a "Truck Nearby" notification on radius entry.
func (srv *notifierService) CheckTruckProximity(
	ctx context.Context,
	userID uuid.UUID,
	resident usecase.Coordinates,
	truckID string,
	truck usecase.Coordinates,
	collectorLabel string,
) error {
	if !geo.IsValidCoordinate(resident.Latitude, resident.Longitude) ||
		!geo.IsValidCoordinate(truck.Latitude, truck.Longitude) {
		return nil
	}

	state := srv.states.acquire(userID)
	defer state.release()

	fix := resident
	state.lastFix = &fix

	_, err := srv.checkProximityLocked(ctx, state, userID, resident, truckID, truck, collectorLabel)

	return err
}

// checkProximityLocked applies the radius rule and returns the distance in meters.
func (srv *notifierService) checkProximityLocked(
	ctx context.Context,
	state *notificationState,
	userID uuid.UUID,
	resident usecase.Coordinates,
	truckID string,
	truck usecase.Coordinates,
	collectorLabel string,
) (float64, error) {
	distance := geo.DistanceMeters(resident.Latitude, resident.Longitude, truck.Latitude, truck.Longitude)
	_, notified := state.notifiedTrucks[truckID]

	switch {
	case distance <= srv.radiusMeters && !notified:
		label := collectorLabel
		if label == "" {
			label = "collector"
		}
		_, err := srv.emitter.emit(ctx, kindTruckNearby, notificationDraft{
			userID:  userID,
			title:   "Truck Nearby",
			message: fmt.Sprintf("Garbage truck %s (%s) is about %.0fm from your location.", truckID, label, distance),
			typ:     entity.NotificationInfo,
			link:    trackingLink,
		})
		if err != nil {
			return distance, err
		}
		state.notifiedTrucks[truckID] = struct{}{}

	case distance > srv.radiusMeters && notified:
		delete(state.notifiedTrucks, truckID)
	}

	return distance, nil
}

// CheckNearbyTrucks evaluates every collecting truck against the resident's position.
func (srv *notifierService) CheckNearbyTrucks(ctx context.Context, userID uuid.UUID, resident usecase.Coordinates) ([]*usecase.NearbyTruck, error) {
	if !geo.IsValidCoordinate(resident.Latitude, resident.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	trucks, err := srv.truckRepo.FindCollecting(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collecting trucks")
	}

	state := srv.states.acquire(userID)
	defer state.release()

	fix := resident
	state.lastFix = &fix

	labels := make(map[uuid.UUID]string)
	result := make([]*usecase.NearbyTruck, 0, len(trucks))
	var errs []error
	for _, truck := range trucks {
		if !truck.HasFix() {
			continue
		}
		position := usecase.Coordinates{Latitude: *truck.Latitude, Longitude: *truck.Longitude}
		if !geo.IsValidCoordinate(position.Latitude, position.Longitude) {
			continue
		}

		distance, err := srv.checkProximityLocked(ctx, state, userID, resident, truck.TruckID, position, srv.collectorLabel(ctx, labels, truck.UpdatedBy))
		if err != nil {
			errs = append(errs, err)
		}

		result = append(result, &usecase.NearbyTruck{
			TruckID:        truck.TruckID,
			Latitude:       position.Latitude,
			Longitude:      position.Longitude,
			DistanceMeters: distance,
			Location:       geo.FormatCoordinates(position.Latitude, position.Longitude),
			InRadius:       distance <= srv.radiusMeters,
		})
	}

	return result, errors.Join(errs...)
}

// collectorLabel resolves the display name of the collector driving a truck.
func (srv *notifierService) collectorLabel(ctx context.Context, cache map[uuid.UUID]string, collectorID uuid.UUID) string {
	if label, ok := cache[collectorID]; ok {
		return label
	}

	label := "collector"
	account, err := srv.accountRepo.FindByID(ctx, collectorID)
	if err == nil && account.Name != "" {
		label = account.Name
	}
	cache[collectorID] = label

	return label
}

// NotifyTodaySchedule announces today's schedules for the resident's area.
func (srv *notifierService) NotifyTodaySchedule(ctx context.Context, userID uuid.UUID) error {
	state := srv.states.acquire(userID)
	defer state.release()

	return srv.notifyTodayScheduleLocked(ctx, state, userID)
}

func (srv *notifierService) notifyTodayScheduleLocked(ctx context.Context, state *notificationState, userID uuid.UUID) error {
	account, err := srv.accountRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "resident not found")
		}

		return errors.Wrap(err, "failed to load account")
	}

	area := srv.residentArea(account, state)
	if area == "" {
		srv.log(ctx).Debug("Resident has no area, skipping schedule notification", slog.String("user_id", userID.String()))

		return nil
	}

	schedules, err := srv.scheduleRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load schedules")
	}

	now := srv.localNow()
	var matches []*entity.Schedule
	for _, schedule := range schedules {
		if schedule.RunsOn(now) && schedule.InArea(area) {
			matches = append(matches, schedule)
		}
	}

	today := now.Format(entity.DateLayout)
	if srv.scheduleCountLocked(ctx, state, userID, today) >= srv.dailyCap {
		return nil
	}
	if len(matches) == 0 {
		return nil
	}

	parts := make([]string, 0, len(matches))
	for _, schedule := range matches {
		parts = append(parts, fmt.Sprintf("%s at %s", schedule.DisplayName(), schedule.CollectionTime))
	}

	_, err = srv.emitter.emit(ctx, kindSchedule, notificationDraft{
		userID:  userID,
		title:   "Today's Collection Schedule",
		message: fmt.Sprintf("Collection in %s today: %s.", area, strings.Join(parts, ", ")),
		typ:     entity.NotificationInfo,
		link:    schedulePanelLink,
	})
	if err != nil {
		return err
	}

	srv.incrementScheduleCountLocked(ctx, state, userID, today)

	return nil
}

// residentArea returns the account's barangay, or the zone nearest the last known fix.
func (srv *notifierService) residentArea(account *entity.Account, state *notificationState) string {
	if area := entity.CanonicalName(account.Barangay); area != "" {
		return area
	}
	if state.lastFix == nil {
		return ""
	}

	zone, ok := geo.FindZone(orb.Point{state.lastFix.Longitude, state.lastFix.Latitude}, srv.zones, srv.zoneMatchKm)
	if !ok {
		return ""
	}

	return zone.Name
}

func scheduleCounterKey(userID uuid.UUID, date string) string {
	return "schedule_notified:" + userID.String() + ":" + date
}

// scheduleCountLocked returns today's schedule notification count, restoring it from the
// counter store on the first call of the day.
func (srv *notifierService) scheduleCountLocked(ctx context.Context, state *notificationState, userID uuid.UUID, date string) int {
	if state.countDate != date {
		state.countDate = date
		state.countRestored = false
		state.scheduleNotifiedCount = 0
	}

	if !state.countRestored {
		stored, err := srv.counters.Get(ctx, scheduleCounterKey(userID, date))
		if err != nil {
			srv.log(ctx).Warn("Failed to restore schedule counter",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		} else {
			state.scheduleNotifiedCount = max(state.scheduleNotifiedCount, stored)
			state.countRestored = true
		}
	}

	return state.scheduleNotifiedCount
}

func (srv *notifierService) incrementScheduleCountLocked(ctx context.Context, state *notificationState, userID uuid.UUID, date string) {
	state.scheduleNotifiedCount++

	stored, err := srv.counters.Increment(ctx, scheduleCounterKey(userID, date), scheduleCounterTTL)
	if err != nil {
		srv.log(ctx).Warn("Failed to persist schedule counter",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	state.scheduleNotifiedCount = max(state.scheduleNotifiedCount, stored)
}

// CheckReportStatusChanges notifies on report status transitions after the first observation.
func (srv *notifierService) CheckReportStatusChanges(ctx context.Context, userID uuid.UUID) error {
	reports, err := srv.reportRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load reports")
	}

	state := srv.states.acquire(userID)
	defer state.release()

	var errs []error
	for _, report := range reports {
		previous, seen := state.lastReportCheck[report.ID]
		if seen && previous != report.Status {
			if err := srv.notifyReportStatus(ctx, userID, report, previous); err != nil {
				errs = append(errs, err)
			}
		}
		state.lastReportCheck[report.ID] = report.Status
	}

	return errors.Join(errs...)
}

func (srv *notifierService) notifyReportStatus(ctx context.Context, userID uuid.UUID, report *entity.Report, previous entity.ReportStatus) error {
	draft := notificationDraft{userID: userID, link: reportsLink}

	switch report.Status {
	case entity.ReportReviewed:
		draft.title = "Report Under Review"
		draft.message = fmt.Sprintf("Your report %q is now being reviewed.", report.Title)
		draft.typ = entity.NotificationInfo
	case entity.ReportResolved:
		draft.title = "Report Resolved"
		draft.message = fmt.Sprintf("Your report %q has been resolved.", report.Title)
		draft.typ = entity.NotificationSuccess
	case entity.ReportPending:
		if previous == entity.ReportPending {
			return nil
		}
		draft.title = "Report Reopened"
		draft.message = fmt.Sprintf("Your report %q is pending again.", report.Title)
		draft.typ = entity.NotificationInfo
	default:
		return nil
	}

	_, err := srv.emitter.emit(ctx, kindReportStatus, draft)

	return err
}

// InitializeResidentNotifications announces today's schedule and records the report baseline.
func (srv *notifierService) InitializeResidentNotifications(ctx context.Context, userID uuid.UUID) error {
	state := srv.states.acquire(userID)
	defer state.release()

	scheduleErr := srv.notifyTodayScheduleLocked(ctx, state, userID)
	if scheduleErr != nil {
		srv.log(ctx).Warn("Failed to send today's schedule", slog.Any("error", scheduleErr))
	}

	reports, err := srv.reportRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Join(scheduleErr, errors.Wrap(err, "failed to load reports"))
	}
	for _, report := range reports {
		state.lastReportCheck[report.ID] = report.Status
	}

	return scheduleErr
}

// NotifyAllResidentsCollectionStarted announces the start of collection to every resident
// under the daily cap.
func (srv *notifierService) NotifyAllResidentsCollectionStarted(ctx context.Context) (int, error) {
	residents, err := srv.accountRepo.FindByRole(ctx, entity.RoleResident)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load residents")
	}

	today := srv.localNow().Format(entity.DateLayout)
	notified := 0
	var errs []error
	for _, resident := range residents {
		if err := srv.notifyCollectionStarted(ctx, resident.ID, today); err != nil {
			if !errors.Is(err, errCapReached) {
				errs = append(errs, err)
			}

			continue
		}
		notified++
	}

	srv.log(ctx).Info("Collection started broadcast finished",
		slog.Int("residents", len(residents)),
		slog.Int("notified", notified),
		slog.Int("failed", len(errs)),
	)

	return notified, errors.Join(errs...)
}

// errCapReached marks a resident skipped by the broadcast; it is not reported to callers.
var errCapReached = errors.New("daily schedule cap reached")

func (srv *notifierService) notifyCollectionStarted(ctx context.Context, userID uuid.UUID, today string) error {
	state := srv.states.acquire(userID)
	defer state.release()

	if srv.scheduleCountLocked(ctx, state, userID, today) >= srv.dailyCap {
		return errCapReached
	}

	_, err := srv.emitter.emit(ctx, kindCollectionStarted, notificationDraft{
		userID:  userID,
		title:   "Collection Started",
		message: "Garbage collection has started in your area. Tap to view today's schedule.",
		typ:     entity.NotificationInfo,
		link:    schedulePanelLink,
	})
	if err != nil {
		return err
	}

	srv.incrementScheduleCountLocked(ctx, state, userID, today)

	return nil
}
