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
	repositorymock "resource-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalendarLinkRepository_SaveSyncState(t *testing.T) {
	ctx := context.Background()

	link, err := calendar.NewOutlookCalendarLink(uuid.New(), uuid.New(), []byte(`{"access_token":"t"}`), "ms-user-1")
	require.NoError(t, err)

	t.Run("success: state persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCalendarLinkWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateCalendarLinkSyncState(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		repo := repository.NewCalendarLinkRepository(mockQueries)
		assert.NoError(t, repo.SaveSyncState(ctx, mockDB, link))
	})

	t.Run("error: link vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCalendarLinkWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateCalendarLinkSyncState(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		repo := repository.NewCalendarLinkRepository(mockQueries)
		err := repo.SaveSyncState(ctx, mockDB, link)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCalendarLinkWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateCalendarLinkSyncState(ctx, mockDB, gomock.Any()).
			Return(int64(0), errors.New("database connection error"))

		repo := repository.NewCalendarLinkRepository(mockQueries)
		err := repo.SaveSyncState(ctx, mockDB, link)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSyncQueueRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("inserted when no entry pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSyncQueueWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().EnqueueSyncEntry(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		repo := repository.NewSyncQueueRepository(mockQueries)
		inserted, err := repo.Enqueue(ctx, mockDB, uuid.New(), now)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("absorbed when entry already pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSyncQueueWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().EnqueueSyncEntry(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		repo := repository.NewSyncQueueRepository(mockQueries)
		inserted, err := repo.Enqueue(ctx, mockDB, uuid.New(), now)
		require.NoError(t, err)
		assert.False(t, inserted)
	})
}
