package commands

import (
	"context"
	"time"

	"resource-booking-api/internal/domain/calendar"

	"github.com/google/uuid"
)

// CalendarProvider is the outbound port to the external calendar service.
// Implementations classify failures with errs.ErrProviderTransient and
// errs.ErrProviderAuth so callers can tell a retryable outage from a dead
// token.
type CalendarProvider interface {
	// ExchangeCode trades an authorization code for a serialized token blob.
	ExchangeCode(ctx context.Context, code string) (token []byte, err error)
	// Me resolves the calendar owner behind the token.
	Me(ctx context.Context, token []byte) (*CalendarAccount, error)
	// AuthCodeURL builds the provider consent URL carrying the state nonce.
	AuthCodeURL(state string) string

	ListEvents(ctx context.Context, token []byte) ([]CalendarEvent, []byte, error)
	CreateEvent(ctx context.Context, token []byte, ev CalendarEvent) (eventID string, newToken []byte, err error)
	UpdateEvent(ctx context.Context, token []byte, ev CalendarEvent) (newToken []byte, err error)
	DeleteEvent(ctx context.Context, token []byte, eventID string) (newToken []byte, err error)
}

type CalendarAccount struct {
	ID    string
	Email string
}

type CalendarEvent struct {
	ID      string
	Subject string
	Begin   time.Time
	End     time.Time
}

// JobLock serializes a named batch job across processes.
type JobLock interface {
	Run(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

// SyncReads groups the read side the sync worker depends on.
type SyncReads interface {
	FindLinkByID(ctx context.Context, id uuid.UUID) (*calendar.OutlookCalendarLink, error)
	FindLinkByResource(ctx context.Context, resourceID uuid.UUID) (*calendar.OutlookCalendarLink, error)
	ListLinks(ctx context.Context) ([]*calendar.OutlookCalendarLink, error)
	ListPendingEntries(ctx context.Context) ([]SyncQueueEntry, error)
	ListMappings(ctx context.Context, linkID uuid.UUID) ([]EventMapping, error)
	ListReservationsChangedSince(ctx context.Context, resourceID uuid.UUID, since time.Time) ([]ReservationSyncItem, error)
}

type SyncQueueEntry struct {
	ID         uuid.UUID
	LinkID     uuid.UUID
	EnqueuedAt time.Time
}

type EventMapping struct {
	LinkID        uuid.UUID
	ReservationID uuid.UUID
	EventID       string
}

type ReservationSyncItem struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	Begin        time.Time
	End          time.Time
	State        string
	ReserverName *string
}
