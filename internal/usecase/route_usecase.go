package usecase

import (
	"context"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// SweepResult summarises one end-of-day sweep
type SweepResult struct {
	Date       string `json:"date"`
	Collectors int    `json:"collectors"`
	Missed     int    `json:"missed"`
	Failed     int    `json:"failed"`
}

// RouteUsecase tracks the outcome of each scheduled stop for a collector's day
type RouteUsecase interface {
	// CompleteStop marks the stop collected for today
	CompleteStop(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (*entity.CollectionStatusRecord, error)

	// SkipStop marks the stop skipped for today
	SkipStop(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (*entity.CollectionStatusRecord, error)

	// RecordRemainingAsSkipped marks every stop of the collector scheduled today as skipped,
	// including stops already collected. Returns the number of rows written.
	RecordRemainingAsSkipped(ctx context.Context, collectorID uuid.UUID, truckID, reason string) (int, error)

	// MarkRemainingAsMissed escalates the collector's unresolved stops for today to missed
	MarkRemainingAsMissed(ctx context.Context, collectorID uuid.UUID) (int, error)

	// SweepDay runs the missed escalation for every collector with stops on the date
	SweepDay(ctx context.Context, date string) (*SweepResult, error)

	// GetRouteStatus returns the resolved status of the stop for today, or false when it is
	// still pending or unknown
	GetRouteStatus(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (entity.CollectionStatus, bool, error)

	// GetTodayRoute lists today's stops for the collector with their status
	GetTodayRoute(ctx context.Context, collectorID uuid.UUID) (*entity.TodayRoute, error)

	// TodayRouteGeoJSON exports the route lines of today's remaining stops
	TodayRouteGeoJSON(ctx context.Context, collectorID uuid.UUID) (*geojson.FeatureCollection, error)
}
