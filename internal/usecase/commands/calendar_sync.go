package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/joblock"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/clock"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/pkg/pgconv"
	"resource-booking-api/internal/usecase/shared"
)

const (
	syncFailureJobKind  = "email"
	syncFailureJobTopic = "o365_sync_failed"

	reservationStateCancelled = "cancelled"
)

// ErrSyncAlreadyRunning reports that another drain holds the sync job lock.
var ErrSyncAlreadyRunning = errs.New("a sync drain is already running")

type SyncReport struct {
	Enqueued  int
	Processed int
	Failed    int
}

type CalendarSyncCommands interface {
	// AddToQueue enqueues one link for sync. Returns false when the link
	// already had a pending entry.
	AddToQueue(ctx context.Context, linkID uuid.UUID) (bool, error)
	// EnqueueAll queues every link, or just the one belonging to the given
	// resource when a filter is supplied.
	EnqueueAll(ctx context.Context, resourceID *uuid.UUID) (int, error)
	// ProcessQueue drains pending entries sequentially. A failing link is
	// recorded and left queued; the drain moves on to the next entry.
	ProcessQueue(ctx context.Context) (*SyncReport, error)
	// SyncNow enqueues and drains in one run guarded by the cross-process
	// sync job lock. Returns ErrSyncAlreadyRunning when another drain holds
	// the lock.
	SyncNow(ctx context.Context, resourceID *uuid.UUID) (*SyncReport, error)
}

type calendarSyncCommandsImpl struct {
	uow              shared.UnitOfWork
	reads            SyncReads
	provider         CalendarProvider
	clock            clock.Clock
	lock             JobLock
	failureThreshold int
}

func NewCalendarSyncCommands(uow shared.UnitOfWork, reads SyncReads, provider CalendarProvider, clk clock.Clock, lock JobLock, failureThreshold int) CalendarSyncCommands {
	return &calendarSyncCommandsImpl{
		uow:              uow,
		reads:            reads,
		provider:         provider,
		clock:            clk,
		lock:             lock,
		failureThreshold: failureThreshold,
	}
}

func (s *calendarSyncCommandsImpl) AddToQueue(ctx context.Context, linkID uuid.UUID) (bool, error) {
	var inserted bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inserted, err = tx.SyncQueue().Enqueue(ctx, tx.DB(), linkID, s.clock.Now())
		return err
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (s *calendarSyncCommandsImpl) EnqueueAll(ctx context.Context, resourceID *uuid.UUID) (int, error) {
	var links []*calendar.OutlookCalendarLink
	if resourceID != nil {
		link, err := s.reads.FindLinkByResource(ctx, *resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrLinkNotFound
			}
			return 0, err
		}
		links = append(links, link)
	} else {
		var err error
		links, err = s.reads.ListLinks(ctx)
		if err != nil {
			return 0, err
		}
	}

	enqueued := 0
	for _, link := range links {
		inserted, err := s.AddToQueue(ctx, link.ID())
		if err != nil {
			return enqueued, err
		}
		if inserted {
			enqueued++
		}
	}
	return enqueued, nil
}

func (s *calendarSyncCommandsImpl) ProcessQueue(ctx context.Context) (*SyncReport, error) {
	entries, err := s.reads.ListPendingEntries(ctx)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{Enqueued: len(entries)}
	for _, entry := range entries {
		link, err := s.reads.FindLinkByID(ctx, entry.LinkID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Link was removed while queued; the entry is stale.
				if err := s.dropEntry(ctx, entry.ID); err != nil {
					return report, err
				}
				continue
			}
			return report, err
		}

		if syncErr := s.performSync(ctx, link); syncErr != nil {
			report.Failed++
			s.recordFailure(ctx, link, syncErr)
			continue
		}

		link.RecordSuccess(s.clock.Now())
		err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.CalendarLinks().SaveSyncState(ctx, tx.DB(), link); err != nil {
				return err
			}
			return tx.SyncQueue().Delete(ctx, tx.DB(), entry.ID)
		})
		if err != nil {
			return report, err
		}
		report.Processed++
	}
	return report, nil
}

func (s *calendarSyncCommandsImpl) SyncNow(ctx context.Context, resourceID *uuid.UUID) (*SyncReport, error) {
	var report *SyncReport
	err := s.lock.Run(ctx, joblock.O365SyncJob, func(ctx context.Context) error {
		if _, err := s.EnqueueAll(ctx, resourceID); err != nil {
			return err
		}
		var err error
		report, err = s.ProcessQueue(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, joblock.ErrNotAcquired) {
			return nil, ErrSyncAlreadyRunning
		}
		return nil, err
	}
	return report, nil
}

// performSync runs one bidirectional pass for a link: local reservation
// deltas go out as event upserts keyed by the stored mapping, unmapped
// external events come back as o365-source reservations. Mappings are
// persisted as soon as the provider acknowledges each event, so a rerun
// after a partial failure upserts instead of duplicating.
func (s *calendarSyncCommandsImpl) performSync(ctx context.Context, link *calendar.OutlookCalendarLink) error {
	token := link.Token()
	// Provider calls hand back a refreshed token blob. Keep whatever we got
	// to the last good call even when the pass fails midway.
	defer func() {
		if len(token) > 0 {
			link.ReplaceToken(token)
		}
	}()

	mappings, err := s.reads.ListMappings(ctx, link.ID())
	if err != nil {
		return err
	}
	byReservation := make(map[uuid.UUID]EventMapping, len(mappings))
	knownEvents := make(map[string]struct{}, len(mappings))
	for _, m := range mappings {
		byReservation[m.ReservationID] = m
		knownEvents[m.EventID] = struct{}{}
	}

	var since time.Time
	if t := link.LastSyncedAt(); t != nil {
		since = *t
	}
	items, err := s.reads.ListReservationsChangedSince(ctx, link.ResourceID(), since)
	if err != nil {
		return err
	}

	for _, item := range items {
		mapping, mapped := byReservation[item.ID]
		switch {
		case item.State == reservationStateCancelled:
			if !mapped {
				continue
			}
			refreshed, err := s.provider.DeleteEvent(ctx, token, mapping.EventID)
			if err != nil {
				return err
			}
			token = refreshed
			err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.CalendarLinks().DeleteEventMapping(ctx, tx.DB(), link.ID(), item.ID)
			})
			if err != nil {
				return err
			}
			delete(knownEvents, mapping.EventID)

		case mapped:
			refreshed, err := s.provider.UpdateEvent(ctx, token, eventFor(item, mapping.EventID))
			if err != nil {
				return err
			}
			token = refreshed

		default:
			eventID, refreshed, err := s.provider.CreateEvent(ctx, token, eventFor(item, ""))
			if err != nil {
				return err
			}
			token = refreshed
			err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.CalendarLinks().UpsertEventMapping(ctx, tx.DB(), link.ID(), item.ID, eventID)
			})
			if err != nil {
				return err
			}
			knownEvents[eventID] = struct{}{}
		}
	}

	events, refreshed, err := s.provider.ListEvents(ctx, token)
	if err != nil {
		return err
	}
	token = refreshed
	for _, ev := range events {
		if _, ok := knownEvents[ev.ID]; ok {
			continue
		}
		if err := s.importExternalEvent(ctx, link, ev); err != nil {
			return err
		}
	}

	return nil
}

func (s *calendarSyncCommandsImpl) importExternalEvent(ctx context.Context, link *calendar.OutlookCalendarLink, ev CalendarEvent) error {
	reservationID := uuid.New()
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Reservations().CreateExternal(ctx, tx.DB(), sqlq.CreateExternalReservationParams{
			ID:           reservationID,
			ResourceID:   link.ResourceID(),
			UserID:       pgconv.UUIDToPgtype(link.UserID()),
			BeginAt:      ev.Begin,
			EndAt:        ev.End,
			ReserverName: pgconv.StringToPgtype(ev.Subject),
		})
		if err != nil {
			return err
		}
		return tx.CalendarLinks().UpsertEventMapping(ctx, tx.DB(), link.ID(), reservationID, ev.ID)
	})
}

func (s *calendarSyncCommandsImpl) recordFailure(ctx context.Context, link *calendar.OutlookCalendarLink, cause error) {
	notify := link.RecordFailure(s.failureThreshold)
	slog.Warn("calendar sync failed",
		"link_id", link.ID(),
		"resource_id", link.ResourceID(),
		"failure_count", link.FailureCount(),
		"auth_error", errors.Is(cause, errs.ErrProviderAuth),
		"error", cause.Error(),
	)

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.CalendarLinks().SaveSyncState(ctx, tx.DB(), link); err != nil {
			return err
		}
		if !notify {
			return nil
		}
		payload, err := json.Marshal(syncFailurePayload{
			LinkID:       link.ID(),
			ResourceID:   link.ResourceID(),
			UserID:       link.UserID(),
			FailureCount: link.FailureCount(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode sync failure payload")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), syncFailureJobKind, syncFailureJobTopic, payload, s.clock.Now())
	})
	if err != nil {
		slog.Error("failed to record sync failure",
			"link_id", link.ID(), "error", err.Error())
	}
}

func (s *calendarSyncCommandsImpl) dropEntry(ctx context.Context, entryID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.SyncQueue().Delete(ctx, tx.DB(), entryID)
	})
}

type syncFailurePayload struct {
	LinkID       uuid.UUID `json:"link_id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	UserID       uuid.UUID `json:"user_id"`
	FailureCount int       `json:"failure_count"`
}

func eventFor(item ReservationSyncItem, eventID string) CalendarEvent {
	subject := "Reserved"
	if item.ReserverName != nil && *item.ReserverName != "" {
		subject = *item.ReserverName
	}
	return CalendarEvent{
		ID:      eventID,
		Subject: subject,
		Begin:   item.Begin,
		End:     item.End,
	}
}
