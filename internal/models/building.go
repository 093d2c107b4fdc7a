package models

import (
	"time"

	"github.com/google/uuid"
)

// Building is the tenancy root: apartments, announcements, issues and
// invite codes are all scoped to exactly one building. The creator is its
// owner; the id never changes after creation.
type Building struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
