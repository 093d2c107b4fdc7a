package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

// SentinelBuildingID marks that seeding has already occurred.
const SentinelBuildingID = "bbbbbbbb-bbbb-4bbb-bbbb-bbbbbbbbbbb1"

// SeedInviteCode is an unused resident invite for manual testing against
// the seeded building.
const SeedInviteCode = "SEEDRESIDENT0001"

const (
	seedOwnerPrincipal    = "seed-owner"
	seedManagerPrincipal  = "seed-manager"
	seedResidentPrincipal = "seed-resident"
)

// SeedAllTestData loads a demo building with one member per role, two
// apartments, an announcement, an open issue and one unused resident
// invite code. Idempotent: a second run finds the sentinel building and
// returns without writing.
func SeedAllTestData(
	ctx context.Context,
	buildings repositories.BuildingRepository,
	profiles repositories.UserProfileRepository,
	apartments repositories.ApartmentRepository,
	announcements repositories.AnnouncementRepository,
	issues repositories.IssueRepository,
	invites repositories.InviteCodeRepository,
) error {
	buildingID := uuid.MustParse(SentinelBuildingID)

	existing, err := buildings.GetByID(ctx, buildingID)
	if err != nil {
		return fmt.Errorf("failed to check for sentinel building: %w", err)
	}
	if existing != nil {
		utils.Logger.Info("building-service: Seed data already present; skipping seeding.")
		return nil
	}

	now := time.Now().UTC()

	building := &models.Building{
		ID:        buildingID,
		Name:      "Maple Court",
		CreatedBy: seedOwnerPrincipal,
		CreatedAt: now,
	}
	if err := buildings.Create(ctx, building); err != nil {
		return fmt.Errorf("seed building: %w", err)
	}

	members := []struct {
		principal string
		name      string
		role      models.Role
	}{
		{seedOwnerPrincipal, "Olivia Owner", models.RoleOwner},
		{seedManagerPrincipal, "Marcus Manager", models.RoleManager},
		{seedResidentPrincipal, "Rita Resident", models.RoleResident},
	}
	for _, m := range members {
		role := m.role
		profile := &models.UserProfile{
			Principal:  m.principal,
			Name:       m.name,
			Role:       &role,
			BuildingID: &buildingID,
			LoginCount: 1,
			FirstLogin: now,
			LastLogin:  now,
		}
		if err := profiles.Create(ctx, profile); err != nil {
			return fmt.Errorf("seed profile %s: %w", m.principal, err)
		}
	}

	apartmentIDs := make([]uuid.UUID, 0, 2)
	for _, name := range []string{"1A", "2B"} {
		apartment := &models.Apartment{
			ID:         uuid.New(),
			BuildingID: buildingID,
			Name:       name,
			CreatedAt:  now,
		}
		if err := apartments.Create(ctx, apartment); err != nil {
			return fmt.Errorf("seed apartment %s: %w", name, err)
		}
		apartmentIDs = append(apartmentIDs, apartment.ID)
	}

	announcement := &models.Announcement{
		ID:         uuid.New(),
		BuildingID: buildingID,
		Title:      "Welcome to Maple Court",
		Body:       "The elevator inspection is scheduled for next Tuesday.",
		CreatedBy:  seedManagerPrincipal,
		CreatedAt:  now,
	}
	if err := announcements.Create(ctx, announcement); err != nil {
		return fmt.Errorf("seed announcement: %w", err)
	}

	issue := &models.Issue{
		ID:          uuid.New(),
		BuildingID:  buildingID,
		ApartmentID: apartmentIDs[0],
		Title:       "Leaking kitchen faucet",
		Body:        "Dripping since Monday, getting worse.",
		CreatedBy:   seedResidentPrincipal,
		Status:      models.IssueStatusOpen,
		CreatedAt:   now,
	}
	if err := issues.Create(ctx, issue); err != nil {
		return fmt.Errorf("seed issue: %w", err)
	}

	invite := &models.InviteCode{
		Code:       SeedInviteCode,
		Role:       models.RoleResident,
		BuildingID: buildingID,
		CreatedBy:  seedOwnerPrincipal,
		CreatedAt:  now,
	}
	if err := invites.Create(ctx, invite); err != nil {
		return fmt.Errorf("seed invite code: %w", err)
	}

	utils.Logger.Info("building-service: Seeding completed successfully.")
	return nil
}
