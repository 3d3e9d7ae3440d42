package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionStatusModel is the GORM-specific struct for the 'collection_statuses' table.
// The composite unique index is the conflict target of every status upsert.
type CollectionStatusModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ScheduleID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_collection_status_key,priority:1"`
	StreetName     string     `gorm:"type:text;not null;uniqueIndex:idx_collection_status_key,priority:2"`
	CollectionDate time.Time  `gorm:"type:date;not null;uniqueIndex:idx_collection_status_key,priority:3;index:idx_collection_status_collector_date,priority:2"`
	StreetID       *uuid.UUID `gorm:"type:uuid"`
	BarangayName   string     `gorm:"type:text;not null;default:''"`
	CollectorID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_collection_status_collector_date,priority:1"`
	Status         string     `gorm:"type:varchar(16);not null;default:'pending'"`
	MarkedAt       *time.Time
	MarkedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionStatusModel) TableName() string {
	return "collection_statuses"
}
