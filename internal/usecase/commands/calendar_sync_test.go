//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/joblock"
	"resource-booking-api/internal/pkg/clock"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/commands"
	commandsmock "resource-booking-api/tests/mock/commands"
	queriesmock "resource-booking-api/tests/mock/queries"
	sharedmock "resource-booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const failureThreshold = 3

type syncFixture struct {
	uow      *sharedmock.FakeUoW
	reads    *queriesmock.MockSyncReads
	provider *commandsmock.MockCalendarProvider
	clk      *clock.MockClock
	lock     *stubJobLock
	cmd      commands.CalendarSyncCommands
}

// stubJobLock runs the job inline, or refuses like a held advisory lock.
type stubJobLock struct {
	held bool
}

func (l *stubJobLock) Run(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	if l.held {
		return joblock.ErrNotAcquired
	}
	return fn(ctx)
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		uow:      sharedmock.NewFakeUoW(),
		reads:    queriesmock.NewMockSyncReads(ctrl),
		provider: commandsmock.NewMockCalendarProvider(ctrl),
		clk:      clock.NewMockClock(time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)),
		lock:     &stubJobLock{},
	}
	f.cmd = commands.NewCalendarSyncCommands(f.uow, f.reads, f.provider, f.clk, f.lock, failureThreshold)
	return f
}

func newLink(t *testing.T) *calendar.OutlookCalendarLink {
	t.Helper()
	link, err := calendar.NewOutlookCalendarLink(uuid.New(), uuid.New(), []byte(`{"access_token":"t0"}`), "ms-1")
	require.NoError(t, err)
	return link
}

// expectCleanPass wires the provider and read side for a sync pass with no
// local changes and no external events.
func (f *syncFixture) expectCleanPass(link *calendar.OutlookCalendarLink) {
	f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return(nil, nil)
	f.reads.EXPECT().ListReservationsChangedSince(gomock.Any(), link.ResourceID(), gomock.Any()).Return(nil, nil)
	f.provider.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, []byte(`{"access_token":"t1"}`), nil)
}

func TestCalendarSyncCommands_AddToQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: inserts a pending entry", func(t *testing.T) {
		f := newSyncFixture(t)
		linkID := uuid.New()

		inserted, err := f.cmd.AddToQueue(ctx, linkID)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, []uuid.UUID{linkID}, f.uow.Tx.QueueRepo.Enqueued)
	})

	t.Run("success: duplicate enqueue reports false", func(t *testing.T) {
		f := newSyncFixture(t)
		f.uow.Tx.QueueRepo.EnqueueResult = false

		inserted, err := f.cmd.AddToQueue(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, inserted)
	})
}

func TestCalendarSyncCommands_EnqueueAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: queues every link", func(t *testing.T) {
		f := newSyncFixture(t)
		links := []*calendar.OutlookCalendarLink{newLink(t), newLink(t), newLink(t)}
		f.reads.EXPECT().ListLinks(gomock.Any()).Return(links, nil)

		n, err := f.cmd.EnqueueAll(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Len(t, f.uow.Tx.QueueRepo.Enqueued, 3)
	})

	t.Run("success: resource filter queues only its link", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		resourceID := link.ResourceID()
		f.reads.EXPECT().FindLinkByResource(gomock.Any(), resourceID).Return(link, nil)

		n, err := f.cmd.EnqueueAll(ctx, &resourceID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []uuid.UUID{link.ID()}, f.uow.Tx.QueueRepo.Enqueued)
	})

	t.Run("success: already queued links do not inflate the count", func(t *testing.T) {
		f := newSyncFixture(t)
		f.uow.Tx.QueueRepo.EnqueueResult = false
		f.reads.EXPECT().ListLinks(gomock.Any()).Return([]*calendar.OutlookCalendarLink{newLink(t)}, nil)

		n, err := f.cmd.EnqueueAll(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("error: filtered resource has no link", func(t *testing.T) {
		f := newSyncFixture(t)
		resourceID := uuid.New()
		f.reads.EXPECT().FindLinkByResource(gomock.Any(), resourceID).
			Return(nil, infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound))

		_, err := f.cmd.EnqueueAll(ctx, &resourceID)
		assert.ErrorIs(t, err, errs.ErrLinkNotFound)
	})
}

func TestCalendarSyncCommands_ProcessQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: clean pass saves state and clears the entry", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.expectCleanPass(link)

		report, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)
		assert.Equal(t, &commands.SyncReport{Enqueued: 1, Processed: 1}, report)

		require.Len(t, f.uow.Tx.LinkRepo.Saved, 1)
		saved := f.uow.Tx.LinkRepo.Saved[0]
		require.NotNil(t, saved.LastSyncedAt())
		assert.Equal(t, f.clk.Now(), *saved.LastSyncedAt())
		assert.Equal(t, []byte(`{"access_token":"t1"}`), saved.Token())
		assert.Equal(t, []uuid.UUID{entry.ID}, f.uow.Tx.QueueRepo.Deleted)
	})

	t.Run("success: pushes local changes as event upserts", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}

		createdID := uuid.New()
		updatedID := uuid.New()
		cancelledID := uuid.New()
		name := "Maija M."

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return([]commands.EventMapping{
			{LinkID: link.ID(), ReservationID: updatedID, EventID: "ev-upd"},
			{LinkID: link.ID(), ReservationID: cancelledID, EventID: "ev-del"},
		}, nil)
		f.reads.EXPECT().ListReservationsChangedSince(gomock.Any(), link.ResourceID(), gomock.Any()).
			Return([]commands.ReservationSyncItem{
				{ID: cancelledID, State: "cancelled"},
				{ID: updatedID, State: "confirmed", ReserverName: &name},
				{ID: createdID, State: "confirmed"},
			}, nil)

		f.provider.EXPECT().DeleteEvent(gomock.Any(), gomock.Any(), "ev-del").Return([]byte(`{"t":1}`), nil)
		f.provider.EXPECT().UpdateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token []byte, ev commands.CalendarEvent) ([]byte, error) {
				assert.Equal(t, "ev-upd", ev.ID)
				assert.Equal(t, "Maija M.", ev.Subject)
				return token, nil
			})
		f.provider.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token []byte, ev commands.CalendarEvent) (string, []byte, error) {
				assert.Equal(t, "Reserved", ev.Subject)
				return "ev-new", token, nil
			})
		f.provider.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, nil, nil)

		report, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Processed)

		assert.Equal(t, "ev-new", f.uow.Tx.LinkRepo.Mappings[sharedmock.MappingKey{LinkID: link.ID(), ReservationID: createdID}])
		assert.Equal(t, []sharedmock.MappingKey{{LinkID: link.ID(), ReservationID: cancelledID}}, f.uow.Tx.LinkRepo.DeletedMappings)
	})

	t.Run("success: imports unmapped external events as reservations", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}

		begin := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return([]commands.EventMapping{
			{LinkID: link.ID(), ReservationID: uuid.New(), EventID: "ev-known"},
		}, nil)
		f.reads.EXPECT().ListReservationsChangedSince(gomock.Any(), link.ResourceID(), gomock.Any()).Return(nil, nil)
		f.provider.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]commands.CalendarEvent{
			{ID: "ev-known", Subject: "already mapped"},
			{ID: "ev-ext", Subject: "Team standup", Begin: begin, End: begin.Add(time.Hour)},
		}, nil, nil)

		_, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)

		require.Len(t, f.uow.Tx.ReservationRepo.Externals, 1)
		imported := f.uow.Tx.ReservationRepo.Externals[0]
		assert.Equal(t, link.ResourceID(), imported.ResourceID)
		assert.Equal(t, begin, imported.BeginAt)
		assert.Equal(t, "Team standup", imported.ReserverName.String)
		assert.Equal(t, "ev-ext", f.uow.Tx.LinkRepo.Mappings[sharedmock.MappingKey{LinkID: link.ID(), ReservationID: imported.ID}])
	})

	t.Run("failure: entry stays queued and counter grows", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return(nil, errs.ErrProviderTransient)

		report, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)
		assert.Equal(t, &commands.SyncReport{Enqueued: 1, Failed: 1}, report)

		assert.Empty(t, f.uow.Tx.QueueRepo.Deleted)
		require.Len(t, f.uow.Tx.LinkRepo.Saved, 1)
		assert.Equal(t, 1, f.uow.Tx.LinkRepo.Saved[0].FailureCount())
		assert.Empty(t, f.uow.Tx.NotifRepo.Jobs)
	})

	t.Run("failure: crossing the threshold notifies exactly once", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil).Times(failureThreshold + 1)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil).Times(failureThreshold + 1)
		f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return(nil, errs.ErrProviderAuth).Times(failureThreshold + 1)

		for i := 0; i <= failureThreshold; i++ {
			_, err := f.cmd.ProcessQueue(ctx)
			require.NoError(t, err)
		}

		// Third failure fires the job; the fourth stays silent.
		require.Len(t, f.uow.Tx.NotifRepo.Jobs, 1)
		job := f.uow.Tx.NotifRepo.Jobs[0]
		assert.Equal(t, "email", job.Kind)
		assert.Equal(t, "o365_sync_failed", job.Topic)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		assert.Equal(t, link.ID().String(), payload["link_id"])
		assert.EqualValues(t, failureThreshold, payload["failure_count"])
	})

	t.Run("success after failures resets and re-arms", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		for i := 0; i < failureThreshold; i++ {
			link.RecordFailure(failureThreshold)
		}
		require.False(t, link.NotificationArmed())
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.expectCleanPass(link)

		_, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)

		saved := f.uow.Tx.LinkRepo.Saved[0]
		assert.Equal(t, 0, saved.FailureCount())
		assert.True(t, saved.NotificationArmed())
	})

	t.Run("success: one bad link does not block the rest", func(t *testing.T) {
		f := newSyncFixture(t)
		bad := newLink(t)
		good := newLink(t)
		entries := []commands.SyncQueueEntry{
			{ID: uuid.New(), LinkID: bad.ID()},
			{ID: uuid.New(), LinkID: good.ID()},
		}

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return(entries, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), bad.ID()).Return(bad, nil)
		f.reads.EXPECT().ListMappings(gomock.Any(), bad.ID()).Return(nil, errs.ErrProviderTransient)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), good.ID()).Return(good, nil)
		f.expectCleanPass(good)

		report, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)
		assert.Equal(t, &commands.SyncReport{Enqueued: 2, Processed: 1, Failed: 1}, report)
	})

	t.Run("success: stale entry for a removed link is dropped", func(t *testing.T) {
		f := newSyncFixture(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: uuid.New()}

		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), entry.LinkID).
			Return(nil, infra.WrapRepoErr("gone", assert.AnError, infra.KindNotFound))

		report, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)
		assert.Equal(t, &commands.SyncReport{Enqueued: 1}, report)
		assert.Equal(t, []uuid.UUID{entry.ID}, f.uow.Tx.QueueRepo.Deleted)
	})

	t.Run("failure: rotated token is not clobbered by a failing call", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}
		rotated := []byte(`{"access_token":"t1","refresh_token":"r1"}`)

		createdID := uuid.New()
		updatedID := uuid.New()
		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return([]commands.EventMapping{
			{LinkID: link.ID(), ReservationID: updatedID, EventID: "ev-upd"},
		}, nil)
		f.reads.EXPECT().ListReservationsChangedSince(gomock.Any(), link.ResourceID(), gomock.Any()).
			Return([]commands.ReservationSyncItem{
				{ID: createdID, State: "confirmed"},
				{ID: updatedID, State: "confirmed"},
			}, nil)
		f.provider.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return("ev-new", rotated, nil)
		f.provider.EXPECT().UpdateEvent(gomock.Any(), rotated, gomock.Any()).Return(nil, errs.ErrProviderTransient)

		_, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)

		// The provider rotated the refresh token on the successful create; the
		// failing update must not discard it.
		require.Len(t, f.uow.Tx.LinkRepo.Saved, 1)
		assert.Equal(t, rotated, f.uow.Tx.LinkRepo.Saved[0].Token())
	})

	t.Run("failure: refreshed token survives a failing pass", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)
		entry := commands.SyncQueueEntry{ID: uuid.New(), LinkID: link.ID()}
		refreshed := []byte(`{"access_token":"t9"}`)

		cancelledID := uuid.New()
		f.reads.EXPECT().ListPendingEntries(gomock.Any()).Return([]commands.SyncQueueEntry{entry}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.reads.EXPECT().ListMappings(gomock.Any(), link.ID()).Return([]commands.EventMapping{
			{LinkID: link.ID(), ReservationID: cancelledID, EventID: "ev-1"},
		}, nil)
		f.reads.EXPECT().ListReservationsChangedSince(gomock.Any(), link.ResourceID(), gomock.Any()).
			Return([]commands.ReservationSyncItem{{ID: cancelledID, State: "cancelled"}}, nil)
		f.provider.EXPECT().DeleteEvent(gomock.Any(), gomock.Any(), "ev-1").Return(refreshed, nil)
		f.provider.EXPECT().ListEvents(gomock.Any(), refreshed).Return(nil, nil, errs.ErrProviderTransient)

		_, err := f.cmd.ProcessQueue(ctx)
		require.NoError(t, err)

		// The blob from the last good exchange is persisted with the failure.
		require.Len(t, f.uow.Tx.LinkRepo.Saved, 1)
		assert.Equal(t, refreshed, f.uow.Tx.LinkRepo.Saved[0].Token())
	})
}

func TestCalendarSyncCommands_SyncNow(t *testing.T) {
	ctx := context.Background()

	t.Run("success: enqueues and drains under the job lock", func(t *testing.T) {
		f := newSyncFixture(t)
		link := newLink(t)

		f.reads.EXPECT().ListLinks(gomock.Any()).Return([]*calendar.OutlookCalendarLink{link}, nil)
		f.reads.EXPECT().ListPendingEntries(gomock.Any()).
			Return([]commands.SyncQueueEntry{{ID: uuid.New(), LinkID: link.ID()}}, nil)
		f.reads.EXPECT().FindLinkByID(gomock.Any(), link.ID()).Return(link, nil)
		f.expectCleanPass(link)

		report, err := f.cmd.SyncNow(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, &commands.SyncReport{Enqueued: 1, Processed: 1}, report)
	})

	t.Run("error: held lock refuses a second drain", func(t *testing.T) {
		f := newSyncFixture(t)
		f.lock.held = true

		_, err := f.cmd.SyncNow(ctx, nil)
		assert.ErrorIs(t, err, commands.ErrSyncAlreadyRunning)
	})

	t.Run("error: missing filtered link surfaces through the lock", func(t *testing.T) {
		f := newSyncFixture(t)
		resourceID := uuid.New()
		f.reads.EXPECT().FindLinkByResource(gomock.Any(), resourceID).
			Return(nil, infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound))

		_, err := f.cmd.SyncNow(ctx, &resourceID)
		assert.ErrorIs(t, err, errs.ErrLinkNotFound)
	})
}
