package services

import (
	"context"
	"time"

	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

// StaleSelectionAge is how long an unconsumed onboarding selection may
// linger before the cleanup job removes it.
const StaleSelectionAge = 24 * time.Hour

// OnboardingCleanupService purges abandoned onboarding selections, the
// sessions that picked an entry path but never finished registering.
type OnboardingCleanupService struct {
	selections repositories.OnboardingRepository
}

func NewOnboardingCleanupService(selections repositories.OnboardingRepository) *OnboardingCleanupService {
	return &OnboardingCleanupService{selections: selections}
}

func (s *OnboardingCleanupService) CleanupStale(ctx context.Context) error {
	if err := s.selections.CleanupStale(ctx, StaleSelectionAge); err != nil {
		return err
	}
	utils.Logger.Debug("Purged stale onboarding selections")
	return nil
}
