package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus is the review state of a resident report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

// IsValid checks if the status is one of the known values.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportPending, ReportReviewed, ReportResolved:
		return true
	default:
		return false
	}
}

// Report is an issue filed by a resident (missed pickup, illegal dumping, ...).
type Report struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Title     string       `json:"title"`
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
