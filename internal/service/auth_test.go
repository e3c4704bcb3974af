package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/internal/core/auth"
	"taskboard/internal/domain/apperr"
	"taskboard/internal/repo"
)

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "taskboard-test", TTL: time.Hour}
}

func newAuthService() *AuthService {
	return NewAuthService(repo.NewMemUserRepo(), newTestJWTer())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	u, token, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "Ann", u.Name)
	require.Equal(t, "ann@x.com", u.Email)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "secret1", u.PasswordHash)
	require.False(t, u.CreatedAt.IsZero())

	claims, err := newTestJWTer().Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	tests := []struct {
		name, email, password string
	}{
		{"", "ann@x.com", "secret1"},
		{"Ann", "", "secret1"},
		{"Ann", "ann@x.com", ""},
		{"Ann", "not-an-email", "secret1"},
		{"Ann", "ann@x.com", "12345"}, // 5 chars
	}
	for _, tt := range tests {
		_, _, err := svc.Register(ctx, tt.name, tt.email, tt.password)
		require.Error(t, err, "%+v", tt)
		require.True(t, apperr.IsKind(err, apperr.KindValidation), "%+v: %v", tt, err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Another Ann", "ann@x.com", "secret2")
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindConflict))
	require.Equal(t, "User already exists with this email", err.Error())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	reg, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	u, token, err := svc.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, reg.ID, u.ID)
	require.NotEmpty(t, token)
}

func TestLoginDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, errWrongPw := svc.Login(ctx, "ann@x.com", "wrong-password")
	_, _, errUnknown := svc.Login(ctx, "nobody@x.com", "secret1")

	require.Error(t, errWrongPw)
	require.Error(t, errUnknown)
	require.True(t, apperr.IsKind(errWrongPw, apperr.KindAuth))
	require.True(t, apperr.IsKind(errUnknown, apperr.KindAuth))
	require.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestLoginValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, _, err := svc.Login(ctx, "", "secret1")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, _, err = svc.Login(ctx, "ann@x.com", "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}
