package readstore

import (
	"context"
	"time"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/repository/converter"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
	"resource-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CalendarViewQueries interface {
	GetCalendarLinkByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.CalendarLinkRow, error)
	GetCalendarLinkByResource(ctx context.Context, db sqlq.DBTX, resourceID uuid.UUID) (sqlq.CalendarLinkRow, error)
	ListCalendarLinks(ctx context.Context, db sqlq.DBTX) ([]sqlq.CalendarLinkRow, error)
	ListPendingSyncEntries(ctx context.Context, db sqlq.DBTX) ([]sqlq.SyncQueueRow, error)
	ListEventMappings(ctx context.Context, db sqlq.DBTX, linkID uuid.UUID) ([]sqlq.EventMappingRow, error)
	ListReservationsForSync(ctx context.Context, db sqlq.DBTX, resourceID uuid.UUID, since time.Time) ([]sqlq.ReservationRow, error)
}

type CalendarReadStore struct {
	queries CalendarViewQueries
	db      sqlq.DBTX
}

func NewCalendarReadStore(queries CalendarViewQueries, db sqlq.DBTX) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarReadStore) FindLinkByID(ctx context.Context, id uuid.UUID) (*calendar.OutlookCalendarLink, error) {
	row, err := r.queries.GetCalendarLinkByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get calendar link by id", err)
	}
	return converter.CalendarLinkFromRow(row), nil
}

func (r *CalendarReadStore) FindLinkByResource(ctx context.Context, resourceID uuid.UUID) (*calendar.OutlookCalendarLink, error) {
	row, err := r.queries.GetCalendarLinkByResource(ctx, r.db, resourceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get calendar link by resource", err)
	}
	return converter.CalendarLinkFromRow(row), nil
}

func (r *CalendarReadStore) ListLinks(ctx context.Context) ([]*calendar.OutlookCalendarLink, error) {
	rows, err := r.queries.ListCalendarLinks(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar links", err)
	}
	out := make([]*calendar.OutlookCalendarLink, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.CalendarLinkFromRow(row))
	}
	return out, nil
}

func (r *CalendarReadStore) ListPendingEntries(ctx context.Context) ([]commands.SyncQueueEntry, error) {
	rows, err := r.queries.ListPendingSyncEntries(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending sync entries", err)
	}
	out := make([]commands.SyncQueueEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, commands.SyncQueueEntry{
			ID:         row.ID,
			LinkID:     row.LinkID,
			EnqueuedAt: pgconv.TimeFromPgtype(row.EnqueuedAt),
		})
	}
	return out, nil
}

func (r *CalendarReadStore) ListMappings(ctx context.Context, linkID uuid.UUID) ([]commands.EventMapping, error) {
	rows, err := r.queries.ListEventMappings(ctx, r.db, linkID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event mappings", err)
	}
	out := make([]commands.EventMapping, 0, len(rows))
	for _, row := range rows {
		out = append(out, commands.EventMapping{
			LinkID:        row.LinkID,
			ReservationID: row.ReservationID,
			EventID:       row.EventID,
		})
	}
	return out, nil
}

func (r *CalendarReadStore) ListReservationsChangedSince(ctx context.Context, resourceID uuid.UUID, since time.Time) ([]commands.ReservationSyncItem, error) {
	rows, err := r.queries.ListReservationsForSync(ctx, r.db, resourceID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for sync", err)
	}
	out := make([]commands.ReservationSyncItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, commands.ReservationSyncItem{
			ID:           row.ID,
			ResourceID:   row.ResourceID,
			Begin:        pgconv.TimeFromPgtype(row.BeginAt),
			End:          pgconv.TimeFromPgtype(row.EndAt),
			State:        row.State,
			ReserverName: pgconv.StringPtrFromPgtype(row.ReserverName),
		})
	}
	return out, nil
}
