package dtos

import "github.com/binahub/building-service/internal/models"

type CreateBuildingRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type BuildingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
	CreatedAt int64  `json:"created_at"` // ns since epoch
}

func NewBuildingResponse(b *models.Building) BuildingResponse {
	return BuildingResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt.UnixNano(),
	}
}
