package routes

const (
	// Health
	Health = "/health"

	// Onboarding (pre-auth)
	OnboardingSelection = "/api/v1/onboarding/selection"

	// Profile
	ProfileLogin = "/api/v1/profile/login"
	Profile      = "/api/v1/profile"

	// Buildings
	Buildings       = "/api/v1/buildings"
	BuildingMe      = "/api/v1/buildings/me"
	BuildingMembers = "/api/v1/buildings/members"

	// Invite codes
	Invites       = "/api/v1/invites"
	InvitesRedeem = "/api/v1/invites/redeem"

	// Apartments
	Apartments = "/api/v1/apartments"

	// Announcements
	Announcements = "/api/v1/announcements"

	// Issues
	Issues     = "/api/v1/issues"
	IssueClose = "/api/v1/issues/{id}/close"
)
