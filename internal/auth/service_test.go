package auth_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nico/guidepanel/internal/auth"
	"github.com/nico/guidepanel/internal/testutil"
)

func newService(t *testing.T) (*auth.Service, *testutil.TestSetup) {
	t.Helper()
	store := testutil.NewStore(t)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	hash, err := auth.HashPassword("console-pass")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(store, jwtService, hash, logger), &testutil.TestSetup{
		Store:      store,
		JWTService: jwtService,
	}
}

func TestService_Login(t *testing.T) {
	t.Run("valid credentials establish the session", func(t *testing.T) {
		service, ts := newService(t)

		result, err := service.Login(auth.LoginInput{
			Email:    "olive@example.com",
			Password: "console-pass",
			UserID:   "user-owner",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "user-owner", result.User.ID)
		assert.Equal(t, "olive@example.com", result.User.Email)
		assert.True(t, result.Permissions.IsAdmin)

		state := ts.Store.Snapshot()
		assert.True(t, state.Authed)
		require.NotNil(t, state.User)
		assert.Equal(t, "user-owner", state.User.ID)
	})

	t.Run("wrong passphrase rejected", func(t *testing.T) {
		service, ts := newService(t)

		_, err := service.Login(auth.LoginInput{
			Email:    "olive@example.com",
			Password: "wrong",
			UserID:   "user-owner",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.False(t, ts.Store.Snapshot().Authed)
	})

	t.Run("unknown member rejected", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Login(auth.LoginInput{
			Email:    "ghost@example.com",
			Password: "console-pass",
			UserID:   "user-ghost",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("member access level drives permissions", func(t *testing.T) {
		service, _ := newService(t)

		result, err := service.Login(auth.LoginInput{
			Email:    "omar@example.com",
			Password: "console-pass",
			UserID:   "user-coord",
		})
		require.NoError(t, err)
		assert.True(t, result.Permissions.IsViewer)
		assert.False(t, result.Permissions.CanEditContent)
	})
}

func TestService_Logout(t *testing.T) {
	service, ts := newService(t)

	_, err := service.Login(auth.LoginInput{
		Email:    "olive@example.com",
		Password: "console-pass",
		UserID:   "user-owner",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout())
	assert.False(t, ts.Store.Snapshot().Authed)
}
