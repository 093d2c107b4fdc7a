package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/binahub/building-service/internal/models"
)

func TestOnboardingSelectionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOnboardingRepo()
	svc := NewOnboardingService(repo)

	t.Run("PeekBeforeSelectReturnsNothing", func(t *testing.T) {
		sel, err := svc.Peek(ctx, "session-a")
		require.NoError(t, err)
		require.Nil(t, sel)
	})

	t.Run("PeekIsRepeatable", func(t *testing.T) {
		require.NoError(t, svc.Select(ctx, "session-a", models.RoleManager))

		for i := 0; i < 3; i++ {
			sel, err := svc.Peek(ctx, "session-a")
			require.NoError(t, err)
			require.NotNil(t, sel)
			require.Equal(t, models.RoleManager, sel.Selection)
		}
	})

	t.Run("ReselectReplaces", func(t *testing.T) {
		require.NoError(t, svc.Select(ctx, "session-a", models.RoleResident))

		sel, err := svc.Peek(ctx, "session-a")
		require.NoError(t, err)
		require.Equal(t, models.RoleResident, sel.Selection)
	})

	t.Run("ConsumeReturnsOnceThenNothing", func(t *testing.T) {
		sel, err := svc.Consume(ctx, "session-a")
		require.NoError(t, err)
		require.NotNil(t, sel)
		require.Equal(t, models.RoleResident, sel.Selection)

		sel, err = svc.Consume(ctx, "session-a")
		require.NoError(t, err)
		require.Nil(t, sel, "a second consume finds the slot empty")

		sel, err = svc.Peek(ctx, "session-a")
		require.NoError(t, err)
		require.Nil(t, sel)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		require.NoError(t, svc.Select(ctx, "session-b", models.RoleOwner))
		require.NoError(t, svc.Select(ctx, "session-c", models.RoleResident))

		sel, err := svc.Consume(ctx, "session-b")
		require.NoError(t, err)
		require.Equal(t, models.RoleOwner, sel.Selection)

		sel, err = svc.Peek(ctx, "session-c")
		require.NoError(t, err)
		require.Equal(t, models.RoleResident, sel.Selection)
	})
}

func TestOnboardingCleanupPurgesOnlyStaleSelections(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOnboardingRepo()
	svc := NewOnboardingService(repo)
	cleanup := NewOnboardingCleanupService(repo)

	require.NoError(t, svc.Select(ctx, "fresh", models.RoleResident))

	// Backdate one selection past the retention window.
	repo.mu.Lock()
	repo.selections["stale"] = &models.OnboardingSelection{
		SessionKey: "stale",
		Selection:  models.RoleOwner,
		CreatedAt:  time.Now().UTC().Add(-StaleSelectionAge - time.Hour),
	}
	repo.mu.Unlock()

	require.NoError(t, cleanup.CleanupStale(ctx))

	sel, err := svc.Peek(ctx, "stale")
	require.NoError(t, err)
	require.Nil(t, sel)

	sel, err = svc.Peek(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, sel)
}
