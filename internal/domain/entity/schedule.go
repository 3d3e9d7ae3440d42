package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Schedule is a recurring collection assignment: one street in one barangay,
// served by one collector on a fixed set of weekdays.
type Schedule struct {
	ID             uuid.UUID      `json:"id"`              // The Global Unique Identifier (GUID) for the schedule.
	CollectorID    uuid.UUID      `json:"collector_id"`    // The collector assigned to this stop.
	Label          string         `json:"label"`           // Human-readable label, e.g. "Main St pickup".
	StreetName     string         `json:"street_name"`     // Street served by this schedule.
	StreetID       *uuid.UUID     `json:"street_id"`       // Optional reference to a street record.
	Barangay       string         `json:"barangay"`        // Area (barangay) the street belongs to.
	Days           []string       `json:"days"`            // Weekday abbreviations, e.g. ["Mon", "Thu"].
	CollectionTime string         `json:"collection_time"` // Local pickup time, e.g. "07:00".
	Route          orb.LineString `json:"route"`           // Optional route line drawn on the map; points are [lng, lat].
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// WeekdayAbbrev returns the three-letter English abbreviation of the day ("Mon".."Sun").
func WeekdayAbbrev(t time.Time) string {
	return t.Weekday().String()[:3]
}

// RunsOn reports whether the schedule's day set includes the weekday of t.
func (s *Schedule) RunsOn(t time.Time) bool {
	day := WeekdayAbbrev(t)

	return slices.ContainsFunc(s.Days, func(d string) bool {
		return strings.EqualFold(strings.TrimSpace(d), day)
	})
}

// InArea reports whether the schedule serves the given barangay.
func (s *Schedule) InArea(area string) bool {
	area = CanonicalName(area)
	if area == "" {
		return false
	}

	return strings.EqualFold(CanonicalName(s.Barangay), area)
}

// CanonicalStreet returns the street name used as part of the collection status key.
// Schedules created without a street fall back to their label.
func (s *Schedule) CanonicalStreet() string {
	if street := CanonicalName(s.StreetName); street != "" {
		return street
	}

	return CanonicalName(s.Label)
}

// CanonicalArea returns the normalized barangay name.
func (s *Schedule) CanonicalArea() string {
	return CanonicalName(s.Barangay)
}

// DisplayName returns the label shown to residents, falling back to the street.
func (s *Schedule) DisplayName() string {
	if label := CanonicalName(s.Label); label != "" {
		return label
	}

	return s.CanonicalStreet()
}

// Stop identifies one unit of collection work as sent by a collector client.
// ScheduleID may be stale; StreetName and Barangay are used as a fallback lookup.
type Stop struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	StreetName string    `json:"street_name"`
	Barangay   string    `json:"barangay"`
}

// RouteStop is one of today's stops with its current status.
type RouteStop struct {
	Schedule *Schedule        `json:"schedule"`
	Street   string           `json:"street"`
	Status   CollectionStatus `json:"status"`
}

// TodayRoute is a collector's stops for one calendar date.
type TodayRoute struct {
	CollectorID uuid.UUID    `json:"collector_id"`
	Date        string       `json:"date"`
	Stops       []*RouteStop `json:"stops"`
	Remaining   []*RouteStop `json:"remaining"`
}
