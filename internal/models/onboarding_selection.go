package models

import "time"

// OnboardingSelection records which entry path (owner/manager/resident) a
// not-yet-assigned user chose before authenticating. It only pre-fills the
// redemption form; it never grants anything.
type OnboardingSelection struct {
	SessionKey string    `json:"-"`
	Selection  Role      `json:"selection"`
	CreatedAt  time.Time `json:"created_at"`
}
