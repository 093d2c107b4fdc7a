package dtos

import "github.com/binahub/building-service/internal/models"

type CreateAnnouncementRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"required,min=1,max=5000"`
}

type AnnouncementResponse struct {
	ID         string `json:"id"`
	BuildingID string `json:"building_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  int64  `json:"created_at"` // ns since epoch
}

func NewAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:         a.ID.String(),
		BuildingID: a.BuildingID.String(),
		Title:      a.Title,
		Body:       a.Body,
		CreatedBy:  a.CreatedBy,
		CreatedAt:  a.CreatedAt.UnixNano(),
	}
}

func NewAnnouncementListResponse(announcements []*models.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, NewAnnouncementResponse(a))
	}
	return out
}
