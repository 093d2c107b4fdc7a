package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/utils"
)

// maxCodeAttempts bounds the regenerate-on-collision loop. With 36^16
// possible codes a single retry is already vanishingly unlikely.
const maxCodeAttempts = 5

// RedemptionResult is what a successful redemption hands back so the
// caller can route the user into their new building.
type RedemptionResult struct {
	Role       models.Role
	BuildingID uuid.UUID
	Building   *models.Building
}

type InviteService struct {
	invites   repositories.InviteCodeRepository
	profiles  repositories.UserProfileRepository
	buildings repositories.BuildingRepository
	mailer    *Mailer
}

func NewInviteService(
	invites repositories.InviteCodeRepository,
	profiles repositories.UserProfileRepository,
	buildings repositories.BuildingRepository,
	mailer *Mailer,
) *InviteService {
	return &InviteService{
		invites:   invites,
		profiles:  profiles,
		buildings: buildings,
		mailer:    mailer,
	}
}

// Create issues a one-time invite code bound to targetRole and the
// caller's building. The issuance table in models.CanIssueInvite is the
// authoritative guard; callers must not pre-filter beyond UI affordance.
// When notifyEmail is set the code is also mailed out, best-effort.
func (s *InviteService) Create(ctx context.Context, principal string, targetRole models.Role, notifyEmail string) (*models.InviteCode, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.Role == nil || prof.BuildingID == nil {
		return nil, models.ErrIssuerRoleUnknown
	}

	if guardErr := models.CanIssueInvite(*prof.Role, targetRole); guardErr != nil {
		return nil, guardErr
	}

	code, err := s.insertWithRetry(ctx, *prof.BuildingID, targetRole, principal)
	if err != nil {
		return nil, err
	}

	if notifyEmail != "" && s.mailer != nil {
		building, bErr := s.buildings.GetByID(ctx, code.BuildingID)
		buildingName := ""
		if bErr == nil && building != nil {
			buildingName = building.Name
		}
		if mErr := s.mailer.SendInviteCode(notifyEmail, code, buildingName); mErr != nil {
			// The code exists either way; delivery failure is reported, not fatal.
			utils.Logger.WithError(mErr).Warnf("Failed to email invite code to %s", notifyEmail)
		}
	}

	return code, nil
}

// insertWithRetry regenerates on a unique-key collision instead of ever
// overwriting an existing code.
func (s *InviteService) insertWithRetry(ctx context.Context, buildingID uuid.UUID, role models.Role, createdBy string) (*models.InviteCode, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := &models.InviteCode{
			Code:       utils.RandomUpperAlphanumeric(models.InviteCodeLength),
			Role:       role,
			BuildingID: buildingID,
			CreatedBy:  createdBy,
		}
		err := s.invites.Create(ctx, code)
		if err == nil {
			return s.invites.GetByCode(ctx, code.Code)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Logger.Warnf("Invite code collision on attempt %d, regenerating", attempt+1)
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("could not generate a unique invite code after %d attempts", maxCodeAttempts)
}

// List returns all codes scoped to the caller's building, newest first.
func (s *InviteService) List(ctx context.Context, principal string) ([]*models.InviteCode, error) {
	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof == nil || prof.BuildingID == nil {
		return nil, utils.ErrNotAssigned
	}
	return s.invites.ListByBuildingID(ctx, *prof.BuildingID)
}

// Redeem consumes a code and assigns its role and building to the caller.
// The used-flag flip is a single conditional UPDATE, so under concurrent
// redemption of the same code exactly one caller succeeds and the rest see
// ErrInviteAlreadyUsed.
func (s *InviteService) Redeem(ctx context.Context, principal, rawCode string) (*RedemptionResult, error) {
	code := models.NormalizeInviteCode(rawCode)
	if !models.ValidateInviteCodeFormat(code) {
		return nil, utils.ErrInvalidCodeFormat
	}

	prof, err := s.profiles.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if prof != nil && prof.Assigned() {
		return nil, utils.ErrAlreadyAssigned
	}

	invite, err := s.invites.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, utils.ErrInviteNotFound
	}
	if invite.Used {
		return nil, utils.ErrInviteAlreadyUsed
	}

	tag, err := s.invites.MarkUsed(ctx, code, principal)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// Someone else redeemed between our read and the update.
		return nil, utils.ErrInviteAlreadyUsed
	}

	if err := s.assignMembership(ctx, prof, principal, invite); err != nil {
		return nil, err
	}

	building, err := s.buildings.GetByID(ctx, invite.BuildingID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Redeemed code %s but could not load building", code)
	}

	return &RedemptionResult{
		Role:       invite.Role,
		BuildingID: invite.BuildingID,
		Building:   building,
	}, nil
}

func (s *InviteService) assignMembership(ctx context.Context, prof *models.UserProfile, principal string, invite *models.InviteCode) error {
	role := invite.Role
	buildingID := invite.BuildingID

	if prof == nil {
		// First-time caller: the redemption doubles as profile creation.
		return s.profiles.Create(ctx, &models.UserProfile{
			Principal:  principal,
			Role:       &role,
			BuildingID: &buildingID,
			LoginCount: 1,
		})
	}

	return s.profiles.UpdateWithRetry(ctx, principal, func(p *models.UserProfile) error {
		if p.Assigned() {
			return utils.ErrAlreadyAssigned
		}
		p.Role = &role
		p.BuildingID = &buildingID
		return nil
	})
}
