package models

import (
	"time"

	"github.com/google/uuid"
)

// Apartment is an addressable unit inside one building.
type Apartment struct {
	ID         uuid.UUID `json:"id"`
	BuildingID uuid.UUID `json:"building_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
