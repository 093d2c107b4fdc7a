package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

type ProfileService struct {
	profiles repositories.UserProfileRepository
}

func NewProfileService(profiles repositories.UserProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// RecordLogin upserts the caller's profile: first call creates it with
// loginCount=1, later calls bump the counter and stamp lastLogin.
func (s *ProfileService) RecordLogin(ctx context.Context, principal, name string) (*models.UserProfile, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}

	if prof == nil {
		if err := s.profiles.Create(ctx, &models.UserProfile{
			Principal:  principal,
			Name:       name,
			LoginCount: 1,
		}); err != nil {
			return nil, err
		}
		return s.profiles.GetByPrincipal(ctx, principal)
	}

	err = s.profiles.UpdateWithRetry(ctx, principal, func(p *models.UserProfile) error {
		p.LoginCount++
		p.LastLogin = time.Now().UTC()
		if name != "" {
			p.Name = name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.profiles.GetByPrincipal(ctx, principal)
}

// GetProfile returns the caller's profile; ErrProfileNotFound signals a
// first-time user that still needs onboarding.
func (s *ProfileService) GetProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, utils.ErrProfileNotFound
	}
	return prof, nil
}

// SaveProfile updates the display name. Role and building can only change
// through building creation or invite redemption.
func (s *ProfileService) SaveProfile(ctx context.Context, principal, name string) (*models.UserProfile, error) {
	err := s.profiles.UpdateWithRetry(ctx, principal, func(p *models.UserProfile) error {
		p.Name = name
		return nil
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.profiles.GetByPrincipal(ctx, principal)
}
