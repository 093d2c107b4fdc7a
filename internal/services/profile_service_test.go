package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binahub/building-service/internal/utils"
)

func TestRecordLogin(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles)

	t.Run("FirstLoginCreatesProfile", func(t *testing.T) {
		prof, err := svc.RecordLogin(ctx, "alice", "Alice")
		require.NoError(t, err)
		require.Equal(t, "alice", prof.Principal)
		require.Equal(t, "Alice", prof.Name)
		require.Equal(t, int64(1), prof.LoginCount)
		require.False(t, prof.FirstLogin.IsZero())
		require.Nil(t, prof.Role, "a fresh profile has no role until onboarding")
		require.Nil(t, prof.BuildingID)
	})

	t.Run("RepeatLoginsIncrementTheCounter", func(t *testing.T) {
		first, err := svc.GetProfile(ctx, "alice")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err = svc.RecordLogin(ctx, "alice", "")
			require.NoError(t, err)
		}

		prof, err := svc.GetProfile(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, int64(4), prof.LoginCount)
		require.Equal(t, "Alice", prof.Name, "empty name must not clobber the stored one")
		require.Equal(t, first.FirstLogin, prof.FirstLogin, "firstLogin is written once")
		require.False(t, prof.LastLogin.Before(first.LastLogin))
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.GetProfile(ctx, "nobody")
	require.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles)

	_, err := svc.SaveProfile(ctx, "nobody", "Ghost")
	require.ErrorIs(t, err, utils.ErrProfileNotFound)

	_, err = svc.RecordLogin(ctx, "alice", "Alice")
	require.NoError(t, err)

	prof, err := svc.SaveProfile(ctx, "alice", "Alice Prime")
	require.NoError(t, err)
	require.Equal(t, "Alice Prime", prof.Name)
}
