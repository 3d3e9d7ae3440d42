package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Coordinates is a latitude/longitude fix in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyTruck describes a collecting truck relative to a resident
type NearbyTruck struct {
	TruckID        string  `json:"truck_id"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
	Location       string  `json:"location"`
	InRadius       bool    `json:"in_radius"`
}

// NotifierUsecase decides when a resident gets truck, schedule and report notifications
type NotifierUsecase interface {
	// CheckTruckProximity emits a "Truck Nearby" notification when the truck enters the
	// proximity radius and re-arms once it leaves. Invalid coordinates are a no-op.
	CheckTruckProximity(ctx context.Context, userID uuid.UUID, resident Coordinates, truckID string, truck Coordinates, collectorLabel string) error

	// CheckNearbyTrucks runs CheckTruckProximity for every collecting truck with a fix
	CheckNearbyTrucks(ctx context.Context, userID uuid.UUID, resident Coordinates) ([]*NearbyTruck, error)

	// NotifyTodaySchedule announces today's schedules in the resident's area, capped per day
	NotifyTodaySchedule(ctx context.Context, userID uuid.UUID) error

	// CheckReportStatusChanges notifies the resident about reports whose status changed since last seen
	CheckReportStatusChanges(ctx context.Context, userID uuid.UUID) error

	// InitializeResidentNotifications announces today's schedule and seeds the report baseline
	InitializeResidentNotifications(ctx context.Context, userID uuid.UUID) error

	// NotifyAllResidentsCollectionStarted sends the collection-started announcement to every
	// resident still under the daily cap and returns how many were notified
	NotifyAllResidentsCollectionStarted(ctx context.Context) (int, error)
}
