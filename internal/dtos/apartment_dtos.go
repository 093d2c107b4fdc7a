package dtos

import "github.com/binahub/building-service/internal/models"

type CreateApartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

type ApartmentResponse struct {
	ID         string `json:"id"`
	BuildingID string `json:"building_id"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"created_at"` // ns since epoch
}

func NewApartmentResponse(a *models.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:         a.ID.String(),
		BuildingID: a.BuildingID.String(),
		Name:       a.Name,
		CreatedAt:  a.CreatedAt.UnixNano(),
	}
}

func NewApartmentListResponse(apartments []*models.Apartment) []ApartmentResponse {
	out := make([]ApartmentResponse, 0, len(apartments))
	for _, a := range apartments {
		out = append(out, NewApartmentResponse(a))
	}
	return out
}
