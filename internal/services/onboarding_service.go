package services

import (
	"context"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
)

// OnboardingService manages the transient pre-login role selection. The
// selection only decides which registration form the client pre-fills; it
// never changes authorization.
type OnboardingService struct {
	selections repositories.OnboardingRepository
}

func NewOnboardingService(selections repositories.OnboardingRepository) *OnboardingService {
	return &OnboardingService{selections: selections}
}

// Select stores (or replaces) the session's chosen entry path.
func (s *OnboardingService) Select(ctx context.Context, sessionKey string, selection models.Role) error {
	return s.selections.Set(ctx, sessionKey, selection)
}

// Peek reads without consuming. Safe to call any number of times before
// the consuming delete.
func (s *OnboardingService) Peek(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	return s.selections.Get(ctx, sessionKey)
}

// Consume atomically removes and returns the selection. A nil result
// means there was nothing to consume (already consumed, or never set).
func (s *OnboardingService) Consume(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	return s.selections.Consume(ctx, sessionKey)
}
