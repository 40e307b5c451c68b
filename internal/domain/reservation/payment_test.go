//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resource-booking-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveHours(t *testing.T) {
	testCases := []struct {
		name     string
		spec     reservation.WaitingTimeSpec
		expected int
	}{
		{
			name:     "resource override wins",
			spec:     reservation.WaitingTimeSpec{ResourceHours: 48, UnitHours: 98, DefaultHours: 6},
			expected: 48,
		},
		{
			name:     "unit override when resource unset",
			spec:     reservation.WaitingTimeSpec{UnitHours: 98, DefaultHours: 6},
			expected: 98,
		},
		{
			name:     "environment default when nothing set",
			spec:     reservation.WaitingTimeSpec{DefaultHours: 6},
			expected: 6,
		},
		{
			name:     "all unset",
			spec:     reservation.WaitingTimeSpec{},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.spec.EffectiveHours())
		})
	}
}

func TestPaymentRequestedDeadline(t *testing.T) {
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)

	confirmedAt, err := time.Parse(time.RFC3339, "2022-01-10T12:00:00+02:00")
	require.NoError(t, err)

	t.Run("resource override of 48h, truncated to the hour", func(t *testing.T) {
		deadline, err := reservation.PaymentRequestedDeadline(
			confirmedAt,
			reservation.WaitingTimeSpec{ResourceHours: 48, UnitHours: 98},
			helsinki,
		)
		require.NoError(t, err)
		assert.Equal(t, "12.01.2022 12:00", reservation.FormatDeadline(deadline))
	})

	t.Run("sub-hour components are dropped", func(t *testing.T) {
		confirmed, err := time.Parse(time.RFC3339, "2022-01-10T12:45:31+02:00")
		require.NoError(t, err)

		deadline, err := reservation.PaymentRequestedDeadline(
			confirmed,
			reservation.WaitingTimeSpec{UnitHours: 98},
			helsinki,
		)
		require.NoError(t, err)
		assert.Equal(t, "14.01.2022 14:00", reservation.FormatDeadline(deadline))
	})

	t.Run("no confirmation time is an error", func(t *testing.T) {
		_, err := reservation.PaymentRequestedDeadline(time.Time{}, reservation.WaitingTimeSpec{ResourceHours: 48}, helsinki)
		assert.ErrorIs(t, err, reservation.ErrNotConfirmed)
	})

	t.Run("waiting time not in use renders empty", func(t *testing.T) {
		deadline, err := reservation.PaymentRequestedDeadline(confirmedAt, reservation.WaitingTimeSpec{}, helsinki)
		require.NoError(t, err)
		assert.True(t, deadline.IsZero())
		assert.Equal(t, "", reservation.FormatDeadline(deadline))
	})
}
