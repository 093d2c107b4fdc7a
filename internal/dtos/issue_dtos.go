package dtos

import "github.com/binahub/building-service/internal/models"

type ReportIssueRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Body        string `json:"body" validate:"required,min=1,max=5000"`
	ApartmentID string `json:"apartment_id" validate:"required,uuid"`
}

type IssueResponse struct {
	ID          string `json:"id"`
	BuildingID  string `json:"building_id"`
	ApartmentID string `json:"apartment_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	CreatedBy   string `json:"created_by"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"` // ns since epoch
	ClosedAt    *int64 `json:"closed_at,omitempty"`
}

func NewIssueResponse(i *models.Issue) IssueResponse {
	resp := IssueResponse{
		ID:          i.ID.String(),
		BuildingID:  i.BuildingID.String(),
		ApartmentID: i.ApartmentID.String(),
		Title:       i.Title,
		Body:        i.Body,
		CreatedBy:   i.CreatedBy,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt.UnixNano(),
	}
	if i.ClosedAt != nil {
		ns := i.ClosedAt.UnixNano()
		resp.ClosedAt = &ns
	}
	return resp
}

func NewIssueListResponse(issues []*models.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, NewIssueResponse(i))
	}
	return out
}
