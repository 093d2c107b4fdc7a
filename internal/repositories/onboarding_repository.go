package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
)

/*
OnboardingRepository is a single-slot, session-keyed store for the entry
path a user picked before authenticating. Reads are repeatable; Consume
deletes and returns atomically so a concurrent reader can never lose a
selection that was not yet consumed.
*/
type OnboardingRepository interface {
	Set(ctx context.Context, sessionKey string, selection models.Role) error
	Get(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error)
	Consume(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error)
	CleanupStale(ctx context.Context, olderThan time.Duration) error
}

type onboardingRepo struct{ db DB }

func NewOnboardingRepository(db DB) OnboardingRepository {
	return &onboardingRepo{db: db}
}

func (r *onboardingRepo) Set(ctx context.Context, sessionKey string, selection models.Role) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO onboarding_selections (session_key, selection, created_at)
		VALUES ($1,$2, NOW())
		ON CONFLICT (session_key)
		DO UPDATE SET selection=EXCLUDED.selection, created_at=NOW()
	`, sessionKey, string(selection))
	return err
}

func (r *onboardingRepo) Get(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	row := r.db.QueryRow(ctx, `
		SELECT session_key, selection, created_at
		FROM onboarding_selections WHERE session_key=$1`, sessionKey)
	return scanSelection(row)
}

func (r *onboardingRepo) Consume(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	row := r.db.QueryRow(ctx, `
		DELETE FROM onboarding_selections
		WHERE session_key=$1
		RETURNING session_key, selection, created_at`, sessionKey)
	return scanSelection(row)
}

func (r *onboardingRepo) CleanupStale(ctx context.Context, olderThan time.Duration) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM onboarding_selections
		WHERE created_at < NOW() - make_interval(secs => $1)
	`, olderThan.Seconds())
	return err
}

func scanSelection(row pgx.Row) (*models.OnboardingSelection, error) {
	var s models.OnboardingSelection
	var selection string
	if err := row.Scan(&s.SessionKey, &selection, &s.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Selection = models.Role(selection)
	return &s, nil
}
