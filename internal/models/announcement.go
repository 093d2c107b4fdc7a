package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is an append-only notice posted to a building.
type Announcement struct {
	ID         uuid.UUID `json:"id"`
	BuildingID uuid.UUID `json:"building_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
