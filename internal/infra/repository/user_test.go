//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/repository"
	repositorymock "resource-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_SetStaff(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: flag flipped reports a promotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().SetUserStaff(ctx, mockDB, userID).Return(false, nil)

		repo := repository.NewUserRepository(mockQueries)
		promoted, err := repo.SetStaff(ctx, mockDB, userID)
		require.NoError(t, err)
		assert.True(t, promoted)
	})

	t.Run("success: already staff is not a promotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().SetUserStaff(ctx, mockDB, userID).Return(true, nil)

		repo := repository.NewUserRepository(mockQueries)
		promoted, err := repo.SetStaff(ctx, mockDB, userID)
		require.NoError(t, err)
		assert.False(t, promoted)
	})

	t.Run("error: user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().SetUserStaff(ctx, mockDB, userID).Return(false, pgx.ErrNoRows)

		repo := repository.NewUserRepository(mockQueries)
		_, err := repo.SetStaff(ctx, mockDB, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().SetUserStaff(ctx, mockDB, userID).
			Return(false, errors.New("database connection error"))

		repo := repository.NewUserRepository(mockQueries)
		_, err := repo.SetStaff(ctx, mockDB, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	at := time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success: timestamp recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateUserLastLogin(ctx, mockDB, userID, at).Return(nil)

		repo := repository.NewUserRepository(mockQueries)
		assert.NoError(t, repo.UpdateLastLogin(ctx, mockDB, userID, at))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateUserLastLogin(ctx, mockDB, userID, at).
			Return(errors.New("database connection error"))

		repo := repository.NewUserRepository(mockQueries)
		err := repo.UpdateLastLogin(ctx, mockDB, userID, at)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
