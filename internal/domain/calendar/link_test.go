//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"resource-booking-api/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLink(t *testing.T) *calendar.OutlookCalendarLink {
	t.Helper()
	link, err := calendar.NewOutlookCalendarLink(uuid.New(), uuid.New(), []byte(`{"access_token":"x"}`), "ms-user-1")
	require.NoError(t, err)
	return link
}

func TestNewOutlookCalendarLink(t *testing.T) {
	link := newLink(t)
	// A fresh link watches for failures immediately, matching what is
	// persisted on creation.
	assert.True(t, link.NotificationArmed())
	assert.Equal(t, 0, link.FailureCount())

	_, err := calendar.NewOutlookCalendarLink(uuid.New(), uuid.New(), nil, "ms-user-1")
	assert.ErrorIs(t, err, calendar.ErrEmptyToken)

	_, err = calendar.NewOutlookCalendarLink(uuid.New(), uuid.New(), []byte("{}"), "")
	assert.ErrorIs(t, err, calendar.ErrEmptyMicrosoftUserID)
}

func TestRecordFailure_FiresOnceAtThreshold(t *testing.T) {
	link := newLink(t)

	assert.False(t, link.RecordFailure(3), "first failure must not notify")
	assert.False(t, link.RecordFailure(3), "second failure must not notify")
	assert.True(t, link.RecordFailure(3), "third failure crosses the threshold")

	// Disarmed after firing: more failures stay silent.
	assert.False(t, link.RecordFailure(3))
	assert.Equal(t, 4, link.FailureCount())
}

func TestRecordFailure_DisarmedNeverNotifies(t *testing.T) {
	now := time.Now()
	link := calendar.ReconstructOutlookCalendarLink(
		uuid.New(), uuid.New(), uuid.New(),
		[]byte(`{"access_token":"x"}`), "ms-user-1",
		3, false, nil, now, now,
	)

	for range 5 {
		assert.False(t, link.RecordFailure(3))
	}
}

func TestRecordSuccess_ResetsAndRearms(t *testing.T) {
	link := newLink(t)

	link.RecordFailure(3)
	link.RecordFailure(3)
	link.RecordFailure(3)

	now := time.Now()
	link.RecordSuccess(now)

	assert.Equal(t, 0, link.FailureCount())
	assert.True(t, link.NotificationArmed())
	require.NotNil(t, link.LastSyncedAt())
	assert.Equal(t, now, *link.LastSyncedAt())

	// After a success the watcher fires again on the next sustained run.
	assert.False(t, link.RecordFailure(3))
	assert.False(t, link.RecordFailure(3))
	assert.True(t, link.RecordFailure(3))
}
