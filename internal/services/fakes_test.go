package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/repositories"
)

// In-memory repository fakes. They mirror the SQL semantics the real
// repositories rely on: conditional updates report rows affected, unique
// keys raise 23505, reads of absent rows come back (nil, nil).

var (
	tagOneRow  = pgconn.CommandTag("UPDATE 1")
	tagZeroRow = pgconn.CommandTag("UPDATE 0")
)

/* ---------- invite codes ---------- */

type fakeInviteRepo struct {
	mu    sync.Mutex
	codes map[string]*models.InviteCode
	calls int // every method bumps this; format rejection must not
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{codes: make(map[string]*models.InviteCode)}
}

func (r *fakeInviteRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *fakeInviteRepo) Create(ctx context.Context, c *models.InviteCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, exists := r.codes[c.Code]; exists {
		return &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	}
	stored := *c
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.codes[c.Code] = &stored
	return nil
}

func (r *fakeInviteRepo) GetByCode(ctx context.Context, code string) (*models.InviteCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	c, ok := r.codes[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeInviteRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.InviteCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	var out []*models.InviteCode
	for _, c := range r.codes {
		if c.BuildingID == buildingID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) MarkUsed(ctx context.Context, code, redeemedBy string) (pgconn.CommandTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	c, ok := r.codes[code]
	if !ok || c.Used {
		return tagZeroRow, nil
	}
	now := time.Now().UTC()
	c.Used = true
	c.RedeemedBy = &redeemedBy
	c.RedeemedAt = &now
	return tagOneRow, nil
}

/* ---------- user profiles ---------- */

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.UserProfile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.Principal]; exists {
		return &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	}
	stored := *p
	now := time.Now().UTC()
	stored.FirstLogin = now
	stored.LastLogin = now
	stored.RowVersion = 1
	r.profiles[p.Principal] = &stored
	return nil
}

func (r *fakeProfileRepo) GetByPrincipal(ctx context.Context, principal string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[principal]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.UserProfile
	for _, p := range r.profiles {
		if p.BuildingID != nil && *p.BuildingID == buildingID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.Principal]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	r.profiles[p.Principal] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateIfVersion(ctx context.Context, p *models.UserProfile, expected int64) (pgconn.CommandTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.profiles[p.Principal]
	if !ok || current.RowVersion != expected {
		return tagZeroRow, nil
	}
	cp := *p
	cp.RowVersion = expected + 1
	r.profiles[p.Principal] = &cp
	return tagOneRow, nil
}

func (r *fakeProfileRepo) UpdateWithRetry(ctx context.Context, principal string, mutate func(*models.UserProfile) error) error {
	return repositories.WithRetry(
		ctx, 3, principal,
		func(ctx context.Context, id string) (*models.UserProfile, error) {
			return r.GetByPrincipal(ctx, id)
		},
		r.UpdateIfVersion,
		mutate,
	)
}

/* ---------- buildings ---------- */

type fakeBuildingRepo struct {
	mu        sync.Mutex
	buildings map[uuid.UUID]*models.Building
}

func newFakeBuildingRepo() *fakeBuildingRepo {
	return &fakeBuildingRepo{buildings: make(map[uuid.UUID]*models.Building)}
}

func (r *fakeBuildingRepo) Create(ctx context.Context, b *models.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.buildings[b.ID] = &cp
	return nil
}

func (r *fakeBuildingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buildings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

/* ---------- apartments ---------- */

type fakeApartmentRepo struct {
	mu         sync.Mutex
	apartments map[uuid.UUID]*models.Apartment
}

func newFakeApartmentRepo() *fakeApartmentRepo {
	return &fakeApartmentRepo{apartments: make(map[uuid.UUID]*models.Apartment)}
}

func (r *fakeApartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.apartments[a.ID] = &cp
	return nil
}

func (r *fakeApartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apartments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApartmentRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Apartment
	for _, a := range r.apartments {
		if a.BuildingID == buildingID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

/* ---------- issues ---------- */

type fakeIssueRepo struct {
	mu     sync.Mutex
	issues map[uuid.UUID]*models.Issue
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: make(map[uuid.UUID]*models.Issue)}
}

func (r *fakeIssueRepo) Create(ctx context.Context, i *models.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *i
	r.issues[i.ID] = &cp
	return nil
}

func (r *fakeIssueRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issues[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeIssueRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Issue
	for _, i := range r.issues {
		if i.BuildingID == buildingID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeIssueRepo) Close(ctx context.Context, id uuid.UUID) (pgconn.CommandTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issues[id]
	if !ok || i.Status != models.IssueStatusOpen {
		return tagZeroRow, nil
	}
	now := time.Now().UTC()
	i.Status = models.IssueStatusClosed
	i.ClosedAt = &now
	return tagOneRow, nil
}

/* ---------- onboarding selections ---------- */

type fakeOnboardingRepo struct {
	mu         sync.Mutex
	selections map[string]*models.OnboardingSelection
}

func newFakeOnboardingRepo() *fakeOnboardingRepo {
	return &fakeOnboardingRepo{selections: make(map[string]*models.OnboardingSelection)}
}

func (r *fakeOnboardingRepo) Set(ctx context.Context, sessionKey string, selection models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections[sessionKey] = &models.OnboardingSelection{
		SessionKey: sessionKey,
		Selection:  selection,
		CreatedAt:  time.Now().UTC(),
	}
	return nil
}

func (r *fakeOnboardingRepo) Get(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.selections[sessionKey]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeOnboardingRepo) Consume(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.selections[sessionKey]
	if !ok {
		return nil, nil
	}
	delete(r.selections, sessionKey)
	return s, nil
}

func (r *fakeOnboardingRepo) CleanupStale(ctx context.Context, olderThan time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().UTC().Add(-olderThan)
	for key, s := range r.selections {
		if s.CreatedAt.Before(cutoff) {
			delete(r.selections, key)
		}
	}
	return nil
}

/* ---------- seeding helpers ---------- */

func seedProfile(r *fakeProfileRepo, principal string, role models.Role, buildingID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.profiles[principal] = &models.UserProfile{
		Versioned:  models.Versioned{RowVersion: 1},
		Principal:  principal,
		Name:       principal,
		Role:       &role,
		BuildingID: &buildingID,
		LoginCount: 1,
		FirstLogin: now,
		LastLogin:  now,
	}
}
