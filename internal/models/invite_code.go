package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InviteCodeLength is the exact length of an invite code body.
const InviteCodeLength = 16

var inviteCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{16}$`)

// NormalizeInviteCode upper-cases and trims a candidate code. Codes are
// case-insensitive on input and stored upper-case.
func NormalizeInviteCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateInviteCodeFormat reports whether a candidate is a well-formed
// code: exactly 16 alphanumeric characters, any case. This is the same
// check clients run before submission; it must also run authoritatively
// wherever a code is redeemed.
func ValidateInviteCodeFormat(s string) bool {
	return inviteCodePattern.MatchString(s)
}

// InviteCode is a one-time token binding a role and a building.
// Once used it is permanently terminal: there is no un-redeem.
type InviteCode struct {
	Code       string     `json:"code"`
	Role       Role       `json:"role"`
	BuildingID uuid.UUID  `json:"building_id"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	Used       bool       `json:"used"`
	RedeemedBy *string    `json:"redeemed_by,omitempty"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}
