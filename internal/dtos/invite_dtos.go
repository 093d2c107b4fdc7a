package dtos

import "github.com/binahub/building-service/internal/models"

type CreateInviteCodeRequest struct {
	TargetRole string `json:"target_role" validate:"required,oneof=owner manager resident"`
	// Optional: when set, the code is also emailed to the invitee.
	Email string `json:"email" validate:"omitempty,email"`
}

type RedeemInviteCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type InviteCodeResponse struct {
	Code       string  `json:"code"`
	Role       string  `json:"role"`
	BuildingID string  `json:"building_id"`
	CreatedBy  string  `json:"created_by"`
	CreatedAt  int64   `json:"created_at"` // ns since epoch
	Used       bool    `json:"used"`
	RedeemedBy *string `json:"redeemed_by,omitempty"`
	RedeemedAt *int64  `json:"redeemed_at,omitempty"`
}

func NewInviteCodeResponse(c *models.InviteCode) InviteCodeResponse {
	resp := InviteCodeResponse{
		Code:       c.Code,
		Role:       string(c.Role),
		BuildingID: c.BuildingID.String(),
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt.UnixNano(),
		Used:       c.Used,
		RedeemedBy: c.RedeemedBy,
	}
	if c.RedeemedAt != nil {
		ns := c.RedeemedAt.UnixNano()
		resp.RedeemedAt = &ns
	}
	return resp
}

func NewInviteCodeListResponse(codes []*models.InviteCode) []InviteCodeResponse {
	out := make([]InviteCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, NewInviteCodeResponse(c))
	}
	return out
}

type RedemptionResponse struct {
	Role       string            `json:"role"`
	BuildingID string            `json:"building_id"`
	Building   *BuildingResponse `json:"building,omitempty"`
}
