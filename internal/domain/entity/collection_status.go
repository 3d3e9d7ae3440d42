package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for CollectionDate.
const DateLayout = "2006-01-02"

// CollectionStatus is the outcome of one stop on one calendar day.
type CollectionStatus string

const (
	// StatusPending means the stop has not been resolved yet. An absent record is pending too.
	StatusPending CollectionStatus = "pending"
	// StatusCollected means the crew marked the stop complete.
	StatusCollected CollectionStatus = "collected"
	// StatusSkipped means the crew skipped the stop, directly or through the truck-full action.
	StatusSkipped CollectionStatus = "skipped"
	// StatusMissed means the end-of-day sweep found the stop unresolved.
	StatusMissed CollectionStatus = "missed"
)

// String returns the string representation of the status.
func (s CollectionStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s CollectionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCollected, StatusSkipped, StatusMissed:
		return true
	default:
		return false
	}
}

// IsResolved reports whether the stop no longer needs work today.
func (s CollectionStatus) IsResolved() bool {
	switch s {
	case StatusCollected, StatusSkipped, StatusMissed:
		return true
	case StatusPending:
		return false
	default:
		return false
	}
}

// SweepReplaceable reports whether the end-of-day sweep may turn a record in
// this status into missed. Only pending qualifies; collected and skipped are final.
func (s CollectionStatus) SweepReplaceable() bool {
	switch s {
	case StatusPending:
		return true
	case StatusCollected, StatusSkipped, StatusMissed:
		return false
	default:
		return false
	}
}

// FullTruckReplaceable reports whether the truck-full bulk action overwrites a
// record in this status with skipped. A prior collected is downgraded as well.
func (s CollectionStatus) FullTruckReplaceable() bool {
	switch s {
	case StatusPending, StatusCollected:
		return true
	case StatusSkipped, StatusMissed:
		return false
	default:
		return false
	}
}

// SweepReplaceableStatuses lists the stored statuses the sweep may overwrite.
func SweepReplaceableStatuses() []CollectionStatus {
	return filterStatuses(CollectionStatus.SweepReplaceable)
}

// FullTruckReplaceableStatuses lists the stored statuses the truck-full action may overwrite.
func FullTruckReplaceableStatuses() []CollectionStatus {
	return filterStatuses(CollectionStatus.FullTruckReplaceable)
}

func filterStatuses(keep func(CollectionStatus) bool) []CollectionStatus {
	all := []CollectionStatus{StatusPending, StatusCollected, StatusSkipped, StatusMissed}
	result := make([]CollectionStatus, 0, len(all))
	for _, status := range all {
		if keep(status) {
			result = append(result, status)
		}
	}

	return result
}

// CollectionKey is the composite identity of a CollectionStatusRecord.
type CollectionKey struct {
	ScheduleID     uuid.UUID
	StreetName     string
	CollectionDate string // Calendar date in DateLayout.
}

// CollectionStatusRecord is the stored outcome of one stop on one day.
type CollectionStatusRecord struct {
	ID             uuid.UUID        `json:"id"`
	ScheduleID     uuid.UUID        `json:"schedule_id"`
	StreetName     string           `json:"street_name"`
	StreetID       *uuid.UUID       `json:"street_id,omitempty"`
	BarangayName   string           `json:"barangay_name"`
	CollectorID    uuid.UUID        `json:"collector_id"`
	CollectionDate string           `json:"collection_date"`
	Status         CollectionStatus `json:"status"`
	MarkedAt       *time.Time       `json:"marked_at,omitempty"`
	MarkedBy       *uuid.UUID       `json:"marked_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Key returns the composite identity of the record.
func (r *CollectionStatusRecord) Key() CollectionKey {
	return CollectionKey{
		ScheduleID:     r.ScheduleID,
		StreetName:     r.StreetName,
		CollectionDate: r.CollectionDate,
	}
}

// LookupRouteStatus finds the resolved status for a stop among cached records.
// It returns false when no record matches or the matching record is still pending.
func LookupRouteStatus(records []*CollectionStatusRecord, scheduleID uuid.UUID, streetName, date string) (CollectionStatus, bool) {
	street := CanonicalName(streetName)
	for _, record := range records {
		if record == nil || record.ScheduleID != scheduleID || record.CollectionDate != date {
			continue
		}
		if !strings.EqualFold(CanonicalName(record.StreetName), street) {
			continue
		}
		if !record.Status.IsResolved() {
			return "", false
		}

		return record.Status, true
	}

	return "", false
}

// CanonicalName normalizes a street or barangay name for storage and matching.
func CanonicalName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
