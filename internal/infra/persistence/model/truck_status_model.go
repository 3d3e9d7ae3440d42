package model

import (
	"time"

	"github.com/google/uuid"
)

// TruckStatusModel is the GORM-specific struct for the 'truck_status' table.
// TruckID is the natural key; every write is an upsert on it.
type TruckStatusModel struct {
	TruckID      string   `gorm:"type:varchar(64);primaryKey"`
	IsFull       bool     `gorm:"not null;default:false"`
	IsCollecting bool     `gorm:"not null;default:false;index"`
	Latitude     *float64 `gorm:"type:decimal(10,8)"`
	Longitude    *float64 `gorm:"type:decimal(11,8)"`
	UpdatedAt    time.Time
	UpdatedBy    uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (TruckStatusModel) TableName() string {
	return "truck_status"
}
