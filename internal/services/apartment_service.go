package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

type ApartmentService struct {
	apartments repositories.ApartmentRepository
	profiles   repositories.UserProfileRepository
}

func NewApartmentService(
	apartments repositories.ApartmentRepository,
	profiles repositories.UserProfileRepository,
) *ApartmentService {
	return &ApartmentService{apartments: apartments, profiles: profiles}
}

// Create adds an apartment to the caller's building. Owners and managers
// only.
func (s *ApartmentService) Create(ctx context.Context, principal, name string) (*models.Apartment, error) {
	prof, err := s.requireMember(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof.Role == nil || !prof.Role.CanManageBuilding() {
		return nil, utils.ErrNotPermitted
	}

	apartment := &models.Apartment{
		ID:         uuid.New(),
		BuildingID: *prof.BuildingID,
		Name:       name,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.apartments.Create(ctx, apartment); err != nil {
		return nil, err
	}
	return apartment, nil
}

// List returns the apartments of the caller's building.
func (s *ApartmentService) List(ctx context.Context, principal string) ([]*models.Apartment, error) {
	prof, err := s.requireMember(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.apartments.ListByBuildingID(ctx, *prof.BuildingID)
}

func (s *ApartmentService) requireMember(ctx context.Context, principal string) (*models.UserProfile, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrNotAssigned
	}
	return prof, nil
}
