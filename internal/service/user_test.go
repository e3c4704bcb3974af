package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/apperr"
	"taskboard/internal/repo"
)

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	users := repo.NewMemUserRepo()
	authSvc := NewAuthService(users, newTestJWTer())
	svc := NewUserService(users)

	reg, _, err := authSvc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	u, err := svc.Profile(ctx, reg.ID)
	require.NoError(t, err)
	require.Equal(t, "Ann", u.Name)
	require.Equal(t, "ann@x.com", u.Email)

	updated, err := svc.UpdateProfile(ctx, reg.ID, "New Name")
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, "ann@x.com", updated.Email, "email never changes")

	again, err := svc.Profile(ctx, reg.ID)
	require.NoError(t, err)
	require.Equal(t, "New Name", again.Name)
}

func TestUpdateProfileEmptyNameKeepsCurrent(t *testing.T) {
	ctx := context.Background()
	users := repo.NewMemUserRepo()
	authSvc := NewAuthService(users, newTestJWTer())
	svc := NewUserService(users)

	reg, _, err := authSvc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	u, err := svc.UpdateProfile(ctx, reg.ID, "   ")
	require.NoError(t, err)
	require.Equal(t, "Ann", u.Name)
}

func TestProfileNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repo.NewMemUserRepo())

	_, err := svc.Profile(ctx, "ghost")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.UpdateProfile(ctx, "ghost", "x")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
