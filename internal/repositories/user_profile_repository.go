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

type UserProfileRepository interface {
	Create(ctx context.Context, p *models.UserProfile) error

	GetByPrincipal(ctx context.Context, principal string) (*models.UserProfile, error)
	ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.UserProfile, error)

	Update(ctx context.Context, p *models.UserProfile) error
	UpdateIfVersion(ctx context.Context, p *models.UserProfile, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, principal string, mutate func(*models.UserProfile) error) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userProfileRepo struct {
	*BaseVersionedRepo[*models.UserProfile]
	db DB
}

func NewUserProfileRepository(db DB) UserProfileRepository {
	r := &userProfileRepo{db: db}
	selectStmt := baseSelectProfile() + " WHERE principal=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanProfile)
	return r
}

/* ---------- create ---------- */

func (r *userProfileRepo) Create(ctx context.Context, p *models.UserProfile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_profiles (
			principal, name, role, building_id, login_count,
			first_login, last_login, row_version
		) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
	`, p.Principal, p.Name, roleArg(p.Role), p.BuildingID, p.LoginCount)
	return err
}

/* ---------- reads ---------- */

func (r *userProfileRepo) GetByPrincipal(ctx context.Context, principal string) (*models.UserProfile, error) {
	return r.BaseVersionedRepo.GetByID(ctx, principal)
}

func (r *userProfileRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.UserProfile, error) {
	rows, err := r.db.Query(ctx, baseSelectProfile()+" WHERE building_id=$1 ORDER BY name", buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.UserProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

/* ---------- update ---------- */

func (r *userProfileRepo) Update(ctx context.Context, p *models.UserProfile) error {
	_, err := r.update(ctx, p, false, 0)
	return err
}

func (r *userProfileRepo) UpdateIfVersion(ctx context.Context, p *models.UserProfile, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, p, true, expected)
}

func (r *userProfileRepo) UpdateWithRetry(ctx context.Context, principal string, mutate func(*models.UserProfile) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, principal, mutate, r.UpdateIfVersion)
}

func (r *userProfileRepo) update(ctx context.Context, p *models.UserProfile, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE user_profiles
		SET name=$1, role=$2, building_id=$3, login_count=$4, last_login=$5
	`
	args := []any{p.Name, roleArg(p.Role), p.BuildingID, p.LoginCount, p.LastLogin}
	if check {
		sql += `, row_version=row_version+1 WHERE principal=$6 AND row_version=$7`
		args = append(args, p.Principal, expected)
	} else {
		sql += ` WHERE principal=$6`
		args = append(args, p.Principal)
	}
	return r.db.Exec(ctx, sql, args...)
}

/* ---------- internals ---------- */

func baseSelectProfile() string {
	return `
		SELECT principal, name, role, building_id, login_count,
		first_login, last_login, row_version
		FROM user_profiles`
}

func roleArg(r *models.Role) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func scanProfile(row pgx.Row) (*models.UserProfile, error) {
	var p models.UserProfile
	var role *string
	if err := row.Scan(
		&p.Principal, &p.Name, &role, &p.BuildingID,
		&p.LoginCount, &p.FirstLogin, &p.LastLogin, &p.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if role != nil {
		r := models.Role(*role)
		p.Role = &r
	}
	return &p, nil
}
