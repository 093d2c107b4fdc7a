package models

import "fmt"

// ------------------------------------------------------------------------
// Role enumerates membership roles inside a building. The set is closed:
// anything else is an error, never a wildcard.
// ------------------------------------------------------------------------
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleResident Role = "resident"
)

// ParseRole converts strings ("owner", "manager", "resident") to the enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleManager:
		return RoleManager, nil
	case RoleResident:
		return RoleResident, nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleManager || r == RoleResident
}

func (r Role) DisplayName() string {
	switch r {
	case RoleOwner:
		return "Building Owner"
	case RoleManager:
		return "Building Manager"
	case RoleResident:
		return "Resident"
	default:
		return "Unknown"
	}
}

// PrivilegeTier orders roles by privilege: Owner > Manager > Resident.
func (r Role) PrivilegeTier() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleManager:
		return 2
	case RoleResident:
		return 1
	default:
		return 0
	}
}

// CanManageBuilding reports whether the role may create apartments and
// close issues.
func (r Role) CanManageBuilding() bool {
	return r == RoleOwner || r == RoleManager
}

// ------------------------------------------------------------------------
// Invite issuance rules. This table is the single source of truth for who
// may issue codes for whom; controllers and DTO option lists must derive
// from it rather than keep their own copy.
// ------------------------------------------------------------------------

// GuardError is a user-facing issuance denial with a specific reason.
type GuardError struct {
	Reason string
}

func (e *GuardError) Error() string { return e.Reason }

var (
	ErrResidentCannotInvite = &GuardError{Reason: "Residents cannot issue invite codes"}
	ErrManagerInviteManager = &GuardError{Reason: "A manager cannot invite another manager"}
	ErrManagerInviteOwner   = &GuardError{Reason: "A manager cannot invite an owner"}
	ErrIssuerRoleUnknown    = &GuardError{Reason: "Caller has no role that permits issuing invite codes"}
)

// CanIssueInvite decides whether issuerRole may create an invite code that
// grants targetRole. A nil return means allow.
func CanIssueInvite(issuer, target Role) error {
	if !target.Valid() {
		return fmt.Errorf("invalid target role: %q", target)
	}
	switch issuer {
	case RoleOwner:
		return nil
	case RoleManager:
		switch target {
		case RoleOwner:
			return ErrManagerInviteOwner
		case RoleManager:
			return ErrManagerInviteManager
		default:
			return nil
		}
	case RoleResident:
		return ErrResidentCannotInvite
	default:
		return ErrIssuerRoleUnknown
	}
}

// AllowedInviteTargets lists the roles the issuer may create codes for,
// derived from CanIssueInvite so the two can never drift apart.
func AllowedInviteTargets(issuer Role) []Role {
	var out []Role
	for _, target := range []Role{RoleOwner, RoleManager, RoleResident} {
		if CanIssueInvite(issuer, target) == nil {
			out = append(out, target)
		}
	}
	return out
}
