package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

type IssueService struct {
	issues     repositories.IssueRepository
	apartments repositories.ApartmentRepository
	profiles   repositories.UserProfileRepository
}

func NewIssueService(
	issues repositories.IssueRepository,
	apartments repositories.ApartmentRepository,
	profiles repositories.UserProfileRepository,
) *IssueService {
	return &IssueService{issues: issues, apartments: apartments, profiles: profiles}
}

// Report files an issue against an apartment in the caller's building.
// The apartment must belong to the same building.
func (s *IssueService) Report(ctx context.Context, principal, title, body string, apartmentID uuid.UUID) (*models.Issue, error) {
	prof, err := s.requireMember(ctx, principal)
	if err != nil {
		return nil, err
	}

	apartment, err := s.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	if apartment == nil || apartment.BuildingID != *prof.BuildingID {
		return nil, utils.ErrApartmentNotFound
	}

	issue := &models.Issue{
		ID:          uuid.New(),
		BuildingID:  *prof.BuildingID,
		ApartmentID: apartmentID,
		Title:       title,
		Body:        body,
		CreatedBy:   principal,
		Status:      models.IssueStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// Close marks an issue resolved. Owners and managers only; closing an
// already-closed issue is a no-op that returns the issue unchanged.
func (s *IssueService) Close(ctx context.Context, principal string, issueID uuid.UUID) (*models.Issue, error) {
	prof, err := s.requireMember(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof.Role == nil || !prof.Role.CanManageBuilding() {
		return nil, utils.ErrNotPermitted
	}

	issue, err := s.issues.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil || issue.BuildingID != *prof.BuildingID {
		return nil, utils.ErrIssueNotFound
	}

	if _, err := s.issues.Close(ctx, issueID); err != nil {
		return nil, err
	}
	return s.issues.GetByID(ctx, issueID)
}

// List returns the caller's building issues, newest first.
func (s *IssueService) List(ctx context.Context, principal string) ([]*models.Issue, error) {
	prof, err := s.requireMember(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.issues.ListByBuildingID(ctx, *prof.BuildingID)
}

func (s *IssueService) requireMember(ctx context.Context, principal string) (*models.UserProfile, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrNotAssigned
	}
	return prof, nil
}
