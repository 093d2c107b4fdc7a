package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type InviteCodeRepository interface {
	Create(ctx context.Context, c *models.InviteCode) error

	GetByCode(ctx context.Context, code string) (*models.InviteCode, error)
	ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.InviteCode, error)

	// MarkUsed flips the code to used in a single conditional statement.
	// Zero rows affected means another redeemer won the race (or the code
	// was already used); the caller must treat that as AlreadyUsed.
	MarkUsed(ctx context.Context, code, redeemedBy string) (pgconn.CommandTag, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type inviteCodeRepo struct{ db DB }

func NewInviteCodeRepository(db DB) InviteCodeRepository {
	return &inviteCodeRepo{db: db}
}

/* ---------- create ---------- */

func (r *inviteCodeRepo) Create(ctx context.Context, c *models.InviteCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invite_codes (
			code, role, building_id, created_by, created_at, used
		) VALUES ($1,$2,$3,$4, NOW(), FALSE)
	`, c.Code, string(c.Role), c.BuildingID, c.CreatedBy)
	return err
}

/* ---------- reads ---------- */

func (r *inviteCodeRepo) GetByCode(ctx context.Context, code string) (*models.InviteCode, error) {
	row := r.db.QueryRow(ctx, baseSelectInvite()+" WHERE code=$1", code)
	return scanInvite(row)
}

func (r *inviteCodeRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.InviteCode, error) {
	rows, err := r.db.Query(ctx, baseSelectInvite()+" WHERE building_id=$1 ORDER BY created_at DESC", buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.InviteCode
	for rows.Next() {
		c, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

/* ---------- redemption ---------- */

func (r *inviteCodeRepo) MarkUsed(ctx context.Context, code, redeemedBy string) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE invite_codes
		SET used=TRUE, redeemed_by=$2, redeemed_at=NOW()
		WHERE code=$1 AND used=FALSE
	`, code, redeemedBy)
}

/* ---------- internals ---------- */

func baseSelectInvite() string {
	return `
		SELECT code, role, building_id, created_by, created_at,
		used, redeemed_by, redeemed_at
		FROM invite_codes`
}

func scanInvite(row pgx.Row) (*models.InviteCode, error) {
	var c models.InviteCode
	var role string
	if err := row.Scan(
		&c.Code, &role, &c.BuildingID, &c.CreatedBy, &c.CreatedAt,
		&c.Used, &c.RedeemedBy, &c.RedeemedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.Role = models.Role(role)
	return &c, nil
}
