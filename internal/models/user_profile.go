package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is keyed by the caller's principal, which the identity
// provider issues. Role and BuildingID are set and cleared together: a role
// is only meaningful inside a building, and a profile belongs to at most
// one building at a time.
type UserProfile struct {
	Versioned
	Principal  string     `json:"principal"`
	Name       string     `json:"name"`
	Role       *Role      `json:"role,omitempty"`
	BuildingID *uuid.UUID `json:"building_id,omitempty"`
	LoginCount int64      `json:"login_count"`
	FirstLogin time.Time  `json:"first_login"`
	LastLogin  time.Time  `json:"last_login"`
}

func (p *UserProfile) GetID() string { return p.Principal }

// Assigned reports whether the profile already belongs to a building.
func (p *UserProfile) Assigned() bool {
	return p.BuildingID != nil
}
