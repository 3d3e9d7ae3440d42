package entity

import (
	"time"

	"github.com/google/uuid"
)

// TruckStatus is the single live record of a garbage truck. There is at most one
// row per TruckID; every write is an upsert keyed by it.
type TruckStatus struct {
	TruckID      string    `json:"truck_id"`      // Identifier painted on the truck, e.g. "TRUCK-01".
	IsFull       bool      `json:"is_full"`       // Set when the crew confirms the truck is full.
	IsCollecting bool      `json:"is_collecting"` // True while a collector is running the route.
	Latitude     *float64  `json:"latitude"`      // Last known GPS latitude; nil until the first fix or after an explicit clear.
	Longitude    *float64  `json:"longitude"`     // Last known GPS longitude.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last write.
	UpdatedBy    uuid.UUID `json:"updated_by"`    // The collector who made the last write.
}

// HasFix reports whether the truck carries a last known position.
func (t *TruckStatus) HasFix() bool {
	return t != nil && t.Latitude != nil && t.Longitude != nil
}
