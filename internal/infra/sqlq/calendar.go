package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateTokenRequestParams struct {
	State      string
	ResourceID uuid.UUID
	UserID     uuid.UUID
	ReturnTo   string
	CreatedAt  time.Time
}

const createTokenRequest = `
INSERT INTO outlook_token_requests (state, resource_id, user_id, return_to, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateTokenRequest(ctx context.Context, db DBTX, arg CreateTokenRequestParams) error {
	_, err := db.Exec(ctx, createTokenRequest,
		arg.State, arg.ResourceID, arg.UserID, arg.ReturnTo, arg.CreatedAt)
	return err
}

type TokenRequestRow struct {
	State      string
	ResourceID uuid.UUID
	UserID     uuid.UUID
	ReturnTo   string
	CreatedAt  pgtype.Timestamptz
}

const getTokenRequest = `
SELECT state, resource_id, user_id, return_to, created_at
FROM outlook_token_requests WHERE state = $1`

func (q *Queries) GetTokenRequest(ctx context.Context, db DBTX, state string) (TokenRequestRow, error) {
	var r TokenRequestRow
	err := db.QueryRow(ctx, getTokenRequest, state).Scan(
		&r.State, &r.ResourceID, &r.UserID, &r.ReturnTo, &r.CreatedAt)
	return r, err
}

const deleteTokenRequest = `DELETE FROM outlook_token_requests WHERE state = $1`

func (q *Queries) DeleteTokenRequest(ctx context.Context, db DBTX, state string) (int64, error) {
	tag, err := db.Exec(ctx, deleteTokenRequest, state)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const calendarLinkColumns = `id, resource_id, user_id, microsoft_user_id, token,
	failure_count, notification_armed, last_synced_at, created_at, updated_at`

type CalendarLinkRow struct {
	ID                uuid.UUID
	ResourceID        uuid.UUID
	UserID            uuid.UUID
	MicrosoftUserID   string
	Token             []byte
	FailureCount      int32
	NotificationArmed bool
	LastSyncedAt      pgtype.Timestamptz
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

func scanCalendarLinkRow(row pgx.Row) (CalendarLinkRow, error) {
	var l CalendarLinkRow
	err := row.Scan(
		&l.ID, &l.ResourceID, &l.UserID, &l.MicrosoftUserID, &l.Token,
		&l.FailureCount, &l.NotificationArmed, &l.LastSyncedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

type CreateCalendarLinkParams struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	UserID          uuid.UUID
	MicrosoftUserID string
	Token           []byte
}

const createCalendarLink = `
INSERT INTO outlook_calendar_links (id, resource_id, user_id, microsoft_user_id, token,
	failure_count, notification_armed)
VALUES ($1, $2, $3, $4, $5, 0, TRUE)`

func (q *Queries) CreateCalendarLink(ctx context.Context, db DBTX, arg CreateCalendarLinkParams) error {
	_, err := db.Exec(ctx, createCalendarLink,
		arg.ID, arg.ResourceID, arg.UserID, arg.MicrosoftUserID, arg.Token)
	return err
}

const getCalendarLinkByResource = `
SELECT ` + calendarLinkColumns + ` FROM outlook_calendar_links WHERE resource_id = $1`

func (q *Queries) GetCalendarLinkByResource(ctx context.Context, db DBTX, resourceID uuid.UUID) (CalendarLinkRow, error) {
	return scanCalendarLinkRow(db.QueryRow(ctx, getCalendarLinkByResource, resourceID))
}

const getCalendarLinkByID = `
SELECT ` + calendarLinkColumns + ` FROM outlook_calendar_links WHERE id = $1`

func (q *Queries) GetCalendarLinkByID(ctx context.Context, db DBTX, id uuid.UUID) (CalendarLinkRow, error) {
	return scanCalendarLinkRow(db.QueryRow(ctx, getCalendarLinkByID, id))
}

const listCalendarLinks = `
SELECT ` + calendarLinkColumns + ` FROM outlook_calendar_links ORDER BY created_at, id`

func (q *Queries) ListCalendarLinks(ctx context.Context, db DBTX) ([]CalendarLinkRow, error) {
	rows, err := db.Query(ctx, listCalendarLinks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CalendarLinkRow
	for rows.Next() {
		l, err := scanCalendarLinkRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type UpdateCalendarLinkSyncStateParams struct {
	ID                uuid.UUID
	Token             []byte
	FailureCount      int32
	NotificationArmed bool
	LastSyncedAt      pgtype.Timestamptz
}

const updateCalendarLinkSyncState = `
UPDATE outlook_calendar_links
SET token = $2, failure_count = $3, notification_armed = $4, last_synced_at = $5, updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateCalendarLinkSyncState(ctx context.Context, db DBTX, arg UpdateCalendarLinkSyncStateParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCalendarLinkSyncState,
		arg.ID, arg.Token, arg.FailureCount, arg.NotificationArmed, arg.LastSyncedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCalendarLink = `DELETE FROM outlook_calendar_links WHERE id = $1`

// Queue entries and event mappings go with the link via ON DELETE CASCADE.
func (q *Queries) DeleteCalendarLink(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteCalendarLink, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpsertEventMappingParams struct {
	ID            uuid.UUID
	LinkID        uuid.UUID
	ReservationID uuid.UUID
	EventID       string
}

const upsertEventMapping = `
INSERT INTO o365_event_mappings (id, link_id, reservation_id, event_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (link_id, reservation_id) DO UPDATE SET event_id = EXCLUDED.event_id`

func (q *Queries) UpsertEventMapping(ctx context.Context, db DBTX, arg UpsertEventMappingParams) error {
	_, err := db.Exec(ctx, upsertEventMapping, arg.ID, arg.LinkID, arg.ReservationID, arg.EventID)
	return err
}

type EventMappingRow struct {
	ID            uuid.UUID
	LinkID        uuid.UUID
	ReservationID uuid.UUID
	EventID       string
}

const listEventMappings = `
SELECT id, link_id, reservation_id, event_id FROM o365_event_mappings WHERE link_id = $1`

func (q *Queries) ListEventMappings(ctx context.Context, db DBTX, linkID uuid.UUID) ([]EventMappingRow, error) {
	rows, err := db.Query(ctx, listEventMappings, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []EventMappingRow
	for rows.Next() {
		var m EventMappingRow
		if err := rows.Scan(&m.ID, &m.LinkID, &m.ReservationID, &m.EventID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const deleteEventMapping = `
DELETE FROM o365_event_mappings WHERE link_id = $1 AND reservation_id = $2`

func (q *Queries) DeleteEventMapping(ctx context.Context, db DBTX, linkID, reservationID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteEventMapping, linkID, reservationID)
	return err
}
