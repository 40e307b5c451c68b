package repository

import (
	"context"

	"resource-booking-api/internal/domain/calendar"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/repository/converter"
	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
)

type CalendarLinkWriteQueries interface {
	CreateCalendarLink(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateCalendarLinkParams) error
	UpdateCalendarLinkSyncState(ctx context.Context, db sqlq.DBTX, arg sqlq.UpdateCalendarLinkSyncStateParams) (int64, error)
	DeleteCalendarLink(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
	UpsertEventMapping(ctx context.Context, db sqlq.DBTX, arg sqlq.UpsertEventMappingParams) error
	DeleteEventMapping(ctx context.Context, db sqlq.DBTX, linkID, reservationID uuid.UUID) error
}

type CalendarLinkRepository struct {
	queries CalendarLinkWriteQueries
}

func NewCalendarLinkRepository(queries CalendarLinkWriteQueries) *CalendarLinkRepository {
	return &CalendarLinkRepository{queries: queries}
}

func (r *CalendarLinkRepository) Create(ctx context.Context, tx sqlq.DBTX, link *calendar.OutlookCalendarLink) error {
	if err := r.queries.CreateCalendarLink(ctx, tx, converter.CalendarLinkToCreateParams(link)); err != nil {
		return infra.WrapRepoErr("failed to create calendar link", err)
	}
	return nil
}

func (r *CalendarLinkRepository) SaveSyncState(ctx context.Context, tx sqlq.DBTX, link *calendar.OutlookCalendarLink) error {
	affected, err := r.queries.UpdateCalendarLinkSyncState(ctx, tx, converter.CalendarLinkToSyncStateParams(link))
	if err != nil {
		return infra.WrapRepoErr("failed to update calendar link sync state", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("calendar link not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CalendarLinkRepository) Delete(ctx context.Context, tx sqlq.DBTX, linkID uuid.UUID) error {
	affected, err := r.queries.DeleteCalendarLink(ctx, tx, linkID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete calendar link", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("calendar link not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CalendarLinkRepository) UpsertEventMapping(ctx context.Context, tx sqlq.DBTX, linkID, reservationID uuid.UUID, eventID string) error {
	params := sqlq.UpsertEventMappingParams{
		ID:            uuid.New(),
		LinkID:        linkID,
		ReservationID: reservationID,
		EventID:       eventID,
	}
	if err := r.queries.UpsertEventMapping(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert event mapping", err)
	}
	return nil
}

func (r *CalendarLinkRepository) DeleteEventMapping(ctx context.Context, tx sqlq.DBTX, linkID, reservationID uuid.UUID) error {
	if err := r.queries.DeleteEventMapping(ctx, tx, linkID, reservationID); err != nil {
		return infra.WrapRepoErr("failed to delete event mapping", err)
	}
	return nil
}
