//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/usecase/queries"
	queriesmock "resource-booking-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func int32p(v int32) *int32 { return &v }

func TestReservationQueries_GetPaymentDeadline(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	helsinki, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)
	confirmed := time.Date(2022, 1, 10, 12, 0, 0, 0, helsinki)

	newQueries := func(t *testing.T, defaultHours int) (*queriesmock.MockReservationReadStore, queries.ReservationQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockReservationReadStore(ctrl)
		return readStore, queries.NewReservationQueries(readStore, defaultHours)
	}

	t.Run("success: resource override wins over unit and default", func(t *testing.T) {
		readStore, q := newQueries(t, 24)
		readStore.EXPECT().PaymentContext(gomock.Any(), reservationID).Return(&queries.PaymentContextView{
			ReservationID:        reservationID,
			ConfirmedByStaffAt:   &confirmed,
			ResourceWaitingHours: int32p(48),
			UnitWaitingHours:     int32p(12),
			TimeZone:             "Europe/Helsinki",
		}, nil)

		view, err := q.GetPaymentDeadline(ctx, reservationID)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2022, 1, 12, 12, 0, 0, 0, helsinki), view.Deadline)
		assert.Equal(t, "12.01.2022 12:00", view.Display)
	})

	t.Run("success: unit waiting time applies when the resource has none", func(t *testing.T) {
		readStore, q := newQueries(t, 24)
		readStore.EXPECT().PaymentContext(gomock.Any(), reservationID).Return(&queries.PaymentContextView{
			ReservationID:      reservationID,
			ConfirmedByStaffAt: &confirmed,
			UnitWaitingHours:   int32p(12),
			TimeZone:           "Europe/Helsinki",
		}, nil)

		view, err := q.GetPaymentDeadline(ctx, reservationID)
		require.NoError(t, err)
		assert.Equal(t, "11.01.2022 00:00", view.Display)
	})

	t.Run("success: deadline truncates to the unit's local hour", func(t *testing.T) {
		readStore, q := newQueries(t, 0)
		offHour := time.Date(2022, 1, 10, 9, 45, 30, 0, time.UTC)
		readStore.EXPECT().PaymentContext(gomock.Any(), reservationID).Return(&queries.PaymentContextView{
			ReservationID:        reservationID,
			ConfirmedByStaffAt:   &offHour,
			ResourceWaitingHours: int32p(2),
			TimeZone:             "Europe/Helsinki",
		}, nil)

		view, err := q.GetPaymentDeadline(ctx, reservationID)
		require.NoError(t, err)

		// 11:45 UTC is 13:45 in Helsinki; minutes are dropped.
		assert.Equal(t, time.Date(2022, 1, 10, 13, 0, 0, 0, helsinki), view.Deadline)
	})

	t.Run("error: no waiting time configured anywhere", func(t *testing.T) {
		readStore, q := newQueries(t, 0)
		readStore.EXPECT().PaymentContext(gomock.Any(), reservationID).Return(&queries.PaymentContextView{
			ReservationID:      reservationID,
			ConfirmedByStaffAt: &confirmed,
			TimeZone:           "Europe/Helsinki",
		}, nil)

		_, err := q.GetPaymentDeadline(ctx, reservationID)
		assert.ErrorIs(t, err, queries.ErrNoPaymentDeadline)
	})

	t.Run("error: reservation never confirmed by staff", func(t *testing.T) {
		readStore, q := newQueries(t, 24)
		readStore.EXPECT().PaymentContext(gomock.Any(), reservationID).Return(&queries.PaymentContextView{
			ReservationID: reservationID,
			TimeZone:      "Europe/Helsinki",
		}, nil)

		_, err := q.GetPaymentDeadline(ctx, reservationID)
		assert.ErrorIs(t, err, queries.ErrReservationNotConfirmed)
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		readStore, q := newQueries(t, 24)
		readStore.EXPECT().PaymentContext(gomock.Any(), reservationID).
			Return(nil, infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound))

		_, err := q.GetPaymentDeadline(ctx, reservationID)
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}
