package dtos

import "github.com/binahub/building-service/internal/models"

type SetOnboardingSelectionRequest struct {
	Selection string `json:"selection" validate:"required,oneof=owner manager resident"`
}

type OnboardingSelectionResponse struct {
	Selection string `json:"selection"`
	CreatedAt int64  `json:"created_at"` // ns since epoch
}

func NewOnboardingSelectionResponse(s *models.OnboardingSelection) OnboardingSelectionResponse {
	return OnboardingSelectionResponse{
		Selection: string(s.Selection),
		CreatedAt: s.CreatedAt.UnixNano(),
	}
}
