package dtos

import "github.com/binahub/building-service/internal/models"

type RecordLoginRequest struct {
	Name string `json:"name" validate:"omitempty,max=120"`
}

type SaveProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type UserProfileResponse struct {
	Principal  string  `json:"principal"`
	Name       string  `json:"name"`
	Role       *string `json:"role,omitempty"`
	RoleLabel  string  `json:"role_label,omitempty"`
	BuildingID *string `json:"building_id,omitempty"`
	LoginCount int64   `json:"login_count"`
	FirstLogin int64   `json:"first_login"` // ns since epoch
	LastLogin  int64   `json:"last_login"`  // ns since epoch

	// Derived from the issuance table so UI option lists can never drift
	// from the authoritative guard.
	AllowedInviteTargets []string `json:"allowed_invite_targets"`
}

func NewUserProfileResponse(p *models.UserProfile) UserProfileResponse {
	resp := UserProfileResponse{
		Principal:            p.Principal,
		Name:                 p.Name,
		LoginCount:           p.LoginCount,
		FirstLogin:           p.FirstLogin.UnixNano(),
		LastLogin:            p.LastLogin.UnixNano(),
		AllowedInviteTargets: []string{},
	}
	if p.Role != nil {
		role := string(*p.Role)
		resp.Role = &role
		resp.RoleLabel = p.Role.DisplayName()
		for _, target := range models.AllowedInviteTargets(*p.Role) {
			resp.AllowedInviteTargets = append(resp.AllowedInviteTargets, string(target))
		}
	}
	if p.BuildingID != nil {
		id := p.BuildingID.String()
		resp.BuildingID = &id
	}
	return resp
}

func NewUserProfileListResponse(profiles []*models.UserProfile) []UserProfileResponse {
	out := make([]UserProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewUserProfileResponse(p))
	}
	return out
}
