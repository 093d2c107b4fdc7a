package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
)

type ApartmentRepository interface {
	Create(ctx context.Context, a *models.Apartment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error)
	ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Apartment, error)
}

type apartmentRepo struct{ db DB }

func NewApartmentRepository(db DB) ApartmentRepository {
	return &apartmentRepo{db: db}
}

func (r *apartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO apartments (id, building_id, name, created_at)
		VALUES ($1,$2,$3, NOW())
	`, a.ID, a.BuildingID, a.Name)
	return err
}

func (r *apartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	row := r.db.QueryRow(ctx, baseSelectApartment()+" WHERE id=$1", id)
	return scanApartment(row)
}

func (r *apartmentRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Apartment, error) {
	rows, err := r.db.Query(ctx, baseSelectApartment()+" WHERE building_id=$1 ORDER BY name", buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func baseSelectApartment() string {
	return `
		SELECT id, building_id, name, created_at
		FROM apartments`
}

func scanApartment(row pgx.Row) (*models.Apartment, error) {
	var a models.Apartment
	if err := row.Scan(&a.ID, &a.BuildingID, &a.Name, &a.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
