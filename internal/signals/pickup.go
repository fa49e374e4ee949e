package signals

import (
	"gorm.io/gorm"
)

// Pickup request lifecycle states.
const (
	StatusReady     = "ready"
	StatusCollected = "collected"
)

// PickupRequest is an externally-created "ready for pickup" record tied to a
// registered location. The Location column holds the raw encoded point value
// exactly as it arrived (WKT text, hex EWKB, or a structured JSON document);
// decoding happens at ingestion time, not at rest.
type PickupRequest struct {
	gorm.Model

	LocationID string `gorm:"uniqueIndex" json:"location_id"`
	Location   string `json:"location"`
	Ward       string `json:"ward"`
	Category   string `json:"category"`
	Status     string `gorm:"index;default:ready" json:"status"`
}
