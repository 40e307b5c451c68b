//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "resource-booking-api/internal/handler/dto/request"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/pkg/clock"
	"resource-booking-api/internal/pkg/jwt"
	"resource-booking-api/internal/pkg/password"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/tests/common/builder"
	queriesmock "resource-booking-api/tests/mock/queries"
	sharedmock "resource-booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authSetup(t *testing.T) (*sharedmock.FakeUoW, *queriesmock.MockUserReadStore, *jwt.Service, commands.AuthCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewFakeUoW()
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	cmd := commands.NewAuthCommands(uow, readStore, jwtService, clk)
	return uow, readStore, jwtService, cmd
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	req := reqdto.LoginRequest{Email: "test@example.com", Password: "password123"}

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("success: returns token pair and records login time", func(t *testing.T) {
		uow, readStore, jwtService, cmd := authSetup(t)
		view := builder.NewUserBuilder().AsStaff().BuildReadModel()
		readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, hash, nil)

		result, err := cmd.Login(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, view.ID, result.UserID)
		claims, err := jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, "staff", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

		refresh, err := jwtService.ValidateToken(result.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, refresh.TokenType)

		assert.Equal(t, []uuid.UUID{view.ID}, uow.Tx.UserRepo.LastLogins)
	})

	t.Run("error: unknown email", func(t *testing.T) {
		_, readStore, _, cmd := authSetup(t)
		readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").
			Return(nil, "", infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound))

		_, err := cmd.Login(ctx, req)
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, readStore, _, cmd := authSetup(t)
		view := builder.NewUserBuilder().BuildReadModel()
		readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, hash, nil)

		_, err := cmd.Login(ctx, reqdto.LoginRequest{Email: "test@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: inactive account", func(t *testing.T) {
		_, readStore, _, cmd := authSetup(t)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, hash, nil)

		_, err := cmd.Login(ctx, req)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: issues a fresh pair", func(t *testing.T) {
		_, readStore, jwtService, cmd := authSetup(t)
		view := builder.NewUserBuilder().AsSuperuser().BuildReadModel()
		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, "superuser")
		require.NoError(t, err)
		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := cmd.RefreshToken(ctx, refreshToken)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, "superuser", claims.Role)
	})

	t.Run("error: access token is not accepted as refresh token", func(t *testing.T) {
		_, _, jwtService, cmd := authSetup(t)
		view := builder.NewUserBuilder().BuildReadModel()
		accessToken, err := jwtService.GenerateAccessToken(view.ID, "user")
		require.NoError(t, err)

		_, err = cmd.RefreshToken(ctx, accessToken)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		_, _, _, cmd := authSetup(t)

		_, err := cmd.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: user deactivated since issuance", func(t *testing.T) {
		_, readStore, jwtService, cmd := authSetup(t)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, "user")
		require.NoError(t, err)
		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err = cmd.RefreshToken(ctx, refreshToken)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
