package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/binahub/building-service/internal/models"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Announcement, error)
}

type announcementRepo struct{ db DB }

func NewAnnouncementRepository(db DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO announcements (id, building_id, title, body, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5, NOW())
	`, a.ID, a.BuildingID, a.Title, a.Body, a.CreatedBy)
	return err
}

func (r *announcementRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Announcement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, building_id, title, body, created_by, created_at
		FROM announcements
		WHERE building_id=$1 ORDER BY created_at DESC`, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.BuildingID, &a.Title, &a.Body, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
