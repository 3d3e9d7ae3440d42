package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleModel is the GORM-specific struct for the 'schedules' table.
type ScheduleModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CollectorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Label          string     `gorm:"type:text;not null"`
	StreetName     string     `gorm:"type:text"`
	StreetID       *uuid.UUID `gorm:"type:uuid"`
	Barangay       string     `gorm:"type:text;not null"`
	Days           string     `gorm:"type:text;not null"` // Comma separated weekday abbreviations, e.g. "Mon,Thu".
	CollectionTime string     `gorm:"type:varchar(16)"`
	Route          []byte     `gorm:"type:jsonb"` // GeoJSON LineString geometry.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleModel) TableName() string {
	return "schedules"
}
