package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

type BuildingService struct {
	buildings repositories.BuildingRepository
	profiles  repositories.UserProfileRepository
}

func NewBuildingService(
	buildings repositories.BuildingRepository,
	profiles repositories.UserProfileRepository,
) *BuildingService {
	return &BuildingService{buildings: buildings, profiles: profiles}
}

// CreateBuilding makes the caller the owner of a brand new building. A
// caller that already belongs to a building cannot create another one.
func (s *BuildingService) CreateBuilding(ctx context.Context, principal, name string) (*models.Building, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof != nil && prof.Assigned() {
		return nil, utils.ErrAlreadyAssigned
	}

	building := &models.Building{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: principal,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.buildings.Create(ctx, building); err != nil {
		return nil, err
	}

	owner := models.RoleOwner
	if prof == nil {
		err = s.profiles.Create(ctx, &models.UserProfile{
			Principal:  principal,
			Role:       &owner,
			BuildingID: &building.ID,
			LoginCount: 1,
		})
	} else {
		err = s.profiles.UpdateWithRetry(ctx, principal, func(p *models.UserProfile) error {
			if p.Assigned() {
				return utils.ErrAlreadyAssigned
			}
			p.Role = &owner
			p.BuildingID = &building.ID
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	utils.Logger.Infof("Building %s created by %s", building.ID, principal)
	return building, nil
}

// GetCallerBuilding resolves the building the caller belongs to.
func (s *BuildingService) GetCallerBuilding(ctx context.Context, principal string) (*models.Building, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrBuildingNotFound
	}

	building, err := s.buildings.GetByID(ctx, *prof.BuildingID)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, utils.ErrBuildingNotFound
	}
	return building, nil
}

// ListMembers returns all profiles assigned to the caller's building.
func (s *BuildingService) ListMembers(ctx context.Context, principal string) ([]*models.UserProfile, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrNotAssigned
	}
	return s.profiles.ListByBuildingID(ctx, *prof.BuildingID)
}
