package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
)

type IssueRepository interface {
	Create(ctx context.Context, i *models.Issue) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Issue, error)
	ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Issue, error)

	// Close transitions an open issue to closed. Zero rows affected means
	// the issue was already closed (or does not exist).
	Close(ctx context.Context, id uuid.UUID) (pgconn.CommandTag, error)
}

type issueRepo struct{ db DB }

func NewIssueRepository(db DB) IssueRepository {
	return &issueRepo{db: db}
}

func (r *issueRepo) Create(ctx context.Context, i *models.Issue) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO issues (id, building_id, apartment_id, title, body, created_by, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
	`, i.ID, i.BuildingID, i.ApartmentID, i.Title, i.Body, i.CreatedBy, string(i.Status))
	return err
}

func (r *issueRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	row := r.db.QueryRow(ctx, baseSelectIssue()+" WHERE id=$1", id)
	return scanIssue(row)
}

func (r *issueRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Issue, error) {
	rows, err := r.db.Query(ctx, baseSelectIssue()+" WHERE building_id=$1 ORDER BY created_at DESC", buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *issueRepo) Close(ctx context.Context, id uuid.UUID) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE issues
		SET status='closed', closed_at=NOW()
		WHERE id=$1 AND status='open'
	`, id)
}

func baseSelectIssue() string {
	return `
		SELECT id, building_id, apartment_id, title, body, created_by,
		status, created_at, closed_at
		FROM issues`
}

func scanIssue(row pgx.Row) (*models.Issue, error) {
	var i models.Issue
	var status string
	if err := row.Scan(
		&i.ID, &i.BuildingID, &i.ApartmentID, &i.Title, &i.Body, &i.CreatedBy,
		&status, &i.CreatedAt, &i.ClosedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	i.Status = models.IssueStatus(status)
	return &i, nil
}
