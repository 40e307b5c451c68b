package shared

import (
	"context"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	UnitAuthorizations() UnitAuthorizationRepository
	Users() UserRepository
	TokenRequests() TokenRequestRepository
	CalendarLinks() CalendarLinkRepository
	Resources() ResourceRepository
	Reservations() ReservationRepository
	SyncQueue() SyncQueueRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlq.DBTX
}

type CommandReads interface {
	UnitByID(ctx context.Context, id string) (*UnitSnapshot, error)
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	CalendarLinkByResource(ctx context.Context, resourceID uuid.UUID) (*calendar.OutlookCalendarLink, error)
	AuthorizationLevels(ctx context.Context, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error)
}

type UnitAuthorizationRepository interface {
	Create(ctx context.Context, tx sqlq.DBTX, auth *unit.UnitAuthorization) error
	LevelsFor(ctx context.Context, tx sqlq.DBTX, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error)
}

type UserRepository interface {
	// SetStaff reports whether the flag flipped from false.
	SetStaff(ctx context.Context, tx sqlq.DBTX, userID uuid.UUID) (promoted bool, err error)
	UpdateLastLogin(ctx context.Context, tx sqlq.DBTX, userID uuid.UUID, at time.Time) error
}

type TokenRequestRepository interface {
	Create(ctx context.Context, tx sqlq.DBTX, req *calendar.OutlookTokenRequestData) error
	FindByState(ctx context.Context, tx sqlq.DBTX, state string) (*calendar.OutlookTokenRequestData, error)
	Delete(ctx context.Context, tx sqlq.DBTX, state string) error
}

type CalendarLinkRepository interface {
	Create(ctx context.Context, tx sqlq.DBTX, link *calendar.OutlookCalendarLink) error
	SaveSyncState(ctx context.Context, tx sqlq.DBTX, link *calendar.OutlookCalendarLink) error
	Delete(ctx context.Context, tx sqlq.DBTX, linkID uuid.UUID) error
	UpsertEventMapping(ctx context.Context, tx sqlq.DBTX, linkID, reservationID uuid.UUID, eventID string) error
	DeleteEventMapping(ctx context.Context, tx sqlq.DBTX, linkID, reservationID uuid.UUID) error
}

type ResourceRepository interface {
	DeletePeriods(ctx context.Context, tx sqlq.DBTX, resourceID uuid.UUID) (int64, error)
	UpdateOpeningHours(ctx context.Context, tx sqlq.DBTX, resourceID uuid.UUID, hours []byte) error
}

type ReservationRepository interface {
	CreateExternal(ctx context.Context, tx sqlq.DBTX, arg sqlq.CreateExternalReservationParams) error
	UpdateTimes(ctx context.Context, tx sqlq.DBTX, arg sqlq.UpdateReservationTimesParams) error
	Cancel(ctx context.Context, tx sqlq.DBTX, reservationID uuid.UUID) error
}

type SyncQueueRepository interface {
	Enqueue(ctx context.Context, tx sqlq.DBTX, linkID uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, tx sqlq.DBTX, entryID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlq.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
