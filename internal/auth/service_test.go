package auth_test

import (
	"testing"
	"time"

	"portfolio-backend/internal/auth"
	apperrors "portfolio-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	service := auth.NewAuthService("test-secret")

	token, err := service.GenerateToken("admin@example.com", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", identity.Subject)
	assert.Equal(t, auth.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestVerifyFailures(t *testing.T) {
	service := auth.NewAuthService("test-secret")

	expired, err := service.GenerateToken("admin@example.com", auth.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	otherSecret := auth.NewAuthService("another-secret")
	foreign, err := otherSecret.GenerateToken("admin@example.com", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		token    string
		expected error
	}{
		{"Empty token", "", apperrors.ErrTokenMissing},
		{"Garbage token", "not.a.jwt", apperrors.ErrTokenMalformed},
		{"Expired token", expired, apperrors.ErrTokenExpired},
		{"Wrong signing key", foreign, apperrors.ErrTokenMalformed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Verify(tc.token)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestVerifyAdmin(t *testing.T) {
	service := auth.NewAuthService("test-secret")

	t.Run("Admin accepted", func(t *testing.T) {
		token, err := service.GenerateToken("admin@example.com", auth.RoleAdmin, time.Hour)
		require.NoError(t, err)

		identity, err := service.VerifyAdmin(token)
		require.NoError(t, err)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("Non-admin rejected", func(t *testing.T) {
		token, err := service.GenerateToken("visitor@example.com", "viewer", time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyAdmin(token)
		assert.ErrorIs(t, err, apperrors.ErrNotAdmin)
	})

	t.Run("Expired token still fails authentication", func(t *testing.T) {
		token, err := service.GenerateToken("admin@example.com", auth.RoleAdmin, -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyAdmin(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}

func TestIdentityIsAdmin(t *testing.T) {
	assert.True(t, (&auth.Identity{Role: auth.RoleAdmin}).IsAdmin())
	assert.False(t, (&auth.Identity{Role: "viewer"}).IsAdmin())
	assert.False(t, (&auth.Identity{}).IsAdmin())
}
