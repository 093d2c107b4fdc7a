package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

type AnnouncementService struct {
	announcements repositories.AnnouncementRepository
	profiles      repositories.UserProfileRepository
}

func NewAnnouncementService(
	announcements repositories.AnnouncementRepository,
	profiles repositories.UserProfileRepository,
) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, profiles: profiles}
}

// Create posts an announcement to the caller's building. Any member may
// post.
func (s *AnnouncementService) Create(ctx context.Context, principal, title, body string) (*models.Announcement, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrNotAssigned
	}

	announcement := &models.Announcement{
		ID:         uuid.New(),
		BuildingID: *prof.BuildingID,
		Title:      title,
		Body:       body,
		CreatedBy:  principal,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// List returns the caller's building announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context, principal string) ([]*models.Announcement, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrNotAssigned
	}
	return s.announcements.ListByBuildingID(ctx, *prof.BuildingID)
}
