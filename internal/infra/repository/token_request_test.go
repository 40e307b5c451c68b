//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/repository"
	"resource-booking-api/internal/infra/sqlq"
	repositorymock "resource-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenRequestRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC)

	req, err := calendar.NewOutlookTokenRequestData("state-1", uuid.New(), uuid.New(), "https://example.com/done", createdAt)
	require.NoError(t, err)

	t.Run("success: request stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTokenRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateTokenRequest(ctx, mockDB, sqlq.CreateTokenRequestParams{
			State:      "state-1",
			ResourceID: req.ResourceID(),
			UserID:     req.UserID(),
			ReturnTo:   "https://example.com/done",
			CreatedAt:  createdAt,
		}).Return(nil)

		repo := repository.NewTokenRequestRepository(mockQueries)
		assert.NoError(t, repo.Create(ctx, mockDB, req))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTokenRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateTokenRequest(ctx, mockDB, gomock.Any()).
			Return(errors.New("database connection error"))

		repo := repository.NewTokenRequestRepository(mockQueries)
		err := repo.Create(ctx, mockDB, req)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestTokenRequestRepository_FindByState(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success: request reconstructed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		resourceID := uuid.New()
		userID := uuid.New()
		mockQueries := repositorymock.NewMockTokenRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetTokenRequest(ctx, mockDB, "state-1").Return(sqlq.TokenRequestRow{
			State:      "state-1",
			ResourceID: resourceID,
			UserID:     userID,
			ReturnTo:   "https://example.com/done",
			CreatedAt:  pgtype.Timestamptz{Time: createdAt, Valid: true},
		}, nil)

		repo := repository.NewTokenRequestRepository(mockQueries)
		got, err := repo.FindByState(ctx, mockDB, "state-1")
		require.NoError(t, err)
		assert.Equal(t, "state-1", got.State())
		assert.Equal(t, resourceID, got.ResourceID())
		assert.Equal(t, userID, got.UserID())
		assert.Equal(t, "https://example.com/done", got.ReturnTo())
		assert.Equal(t, createdAt, got.CreatedAt())
	})

	t.Run("error: unknown state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTokenRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetTokenRequest(ctx, mockDB, "missing").
			Return(sqlq.TokenRequestRow{}, pgx.ErrNoRows)

		repo := repository.NewTokenRequestRepository(mockQueries)
		_, err := repo.FindByState(ctx, mockDB, "missing")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestTokenRequestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: request consumed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTokenRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteTokenRequest(ctx, mockDB, "state-1").Return(int64(1), nil)

		repo := repository.NewTokenRequestRepository(mockQueries)
		assert.NoError(t, repo.Delete(ctx, mockDB, "state-1"))
	})

	t.Run("error: already consumed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTokenRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteTokenRequest(ctx, mockDB, "state-1").Return(int64(0), nil)

		repo := repository.NewTokenRequestRepository(mockQueries)
		err := repo.Delete(ctx, mockDB, "state-1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
