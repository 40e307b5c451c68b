package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra/readstore"
	"resource-booking-api/internal/infra/repository"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlq.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlq.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlq.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlq.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	unitAuthRepo     shared.UnitAuthorizationRepository
	userRepo         shared.UserRepository
	tokenRequestRepo shared.TokenRequestRepository
	calendarLinkRepo shared.CalendarLinkRepository
	resourceRepo     shared.ResourceRepository
	reservationRepo  shared.ReservationRepository
	syncQueueRepo    shared.SyncQueueRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlq.DBTX {
	return t.dbtx
}

func (t *pgTx) UnitAuthorizations() shared.UnitAuthorizationRepository {
	if t.unitAuthRepo == nil {
		t.unitAuthRepo = repository.NewUnitAuthorizationRepository(t.uow.q)
	}
	return t.unitAuthRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) TokenRequests() shared.TokenRequestRepository {
	if t.tokenRequestRepo == nil {
		t.tokenRequestRepo = repository.NewTokenRequestRepository(t.uow.q)
	}
	return t.tokenRequestRepo
}

func (t *pgTx) CalendarLinks() shared.CalendarLinkRepository {
	if t.calendarLinkRepo == nil {
		t.calendarLinkRepo = repository.NewCalendarLinkRepository(t.uow.q)
	}
	return t.calendarLinkRepo
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q)
	}
	return t.resourceRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) SyncQueue() shared.SyncQueueRepository {
	if t.syncQueueRepo == nil {
		t.syncQueueRepo = repository.NewSyncQueueRepository(t.uow.q)
	}
	return t.syncQueueRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlq.DBTX

	// Lazy-initialized readstores
	unitStore     *readstore.UnitReadStore
	resourceStore *readstore.ResourceReadStore
	calendarStore *readstore.CalendarReadStore
}

func (r *commandReads) units() *readstore.UnitReadStore {
	if r.unitStore == nil {
		r.unitStore = readstore.NewUnitReadStore(r.uow.q, r.dbtx)
	}
	return r.unitStore
}

func (r *commandReads) UnitByID(ctx context.Context, id string) (*shared.UnitSnapshot, error) {
	view, err := r.units().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UnitSnapshot{
		ID:         view.ID,
		Name:       view.Name,
		TimeZone:   view.TimeZone,
		DataSource: view.DataSource,
	}
	return snapshot, nil
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	if r.resourceStore == nil {
		r.resourceStore = readstore.NewResourceReadStore(r.uow.q, r.dbtx)
	}

	resource, err := r.resourceStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ResourceSnapshot{
		ID:         resource.ID,
		UnitID:     resource.UnitID,
		Name:       resource.Name,
		Reservable: resource.Reservable,
	}
	return snapshot, nil
}

func (r *commandReads) CalendarLinkByResource(ctx context.Context, resourceID uuid.UUID) (*calendar.OutlookCalendarLink, error) {
	if r.calendarStore == nil {
		r.calendarStore = readstore.NewCalendarReadStore(r.uow.q, r.dbtx)
	}
	return r.calendarStore.FindLinkByResource(ctx, resourceID)
}

func (r *commandReads) AuthorizationLevels(ctx context.Context, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error) {
	return r.units().AuthorizationLevels(ctx, unitID, userID)
}
