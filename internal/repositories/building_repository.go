package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
)

type BuildingRepository interface {
	Create(ctx context.Context, b *models.Building) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error)
}

type buildingRepo struct{ db DB }

func NewBuildingRepository(db DB) BuildingRepository {
	return &buildingRepo{db: db}
}

func (r *buildingRepo) Create(ctx context.Context, b *models.Building) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO buildings (id, name, created_by, created_at)
		VALUES ($1,$2,$3, NOW())
	`, b.ID, b.Name, b.CreatedBy)
	return err
}

func (r *buildingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, created_by, created_at
		FROM buildings WHERE id=$1`, id)

	var b models.Building
	if err := row.Scan(&b.ID, &b.Name, &b.CreatedBy, &b.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
