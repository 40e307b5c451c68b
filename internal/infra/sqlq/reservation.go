package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, resource_id, user_id, begin_at, end_at, state, source,
	reserver_name, confirmed_by_staff_at, created_at, updated_at`

type ReservationRow struct {
	ID                 uuid.UUID
	ResourceID         uuid.UUID
	UserID             pgtype.UUID
	BeginAt            pgtype.Timestamptz
	EndAt              pgtype.Timestamptz
	State              string
	Source             string
	ReserverName       pgtype.Text
	ConfirmedByStaffAt pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

func scanReservationRow(row pgx.Row) (ReservationRow, error) {
	var r ReservationRow
	err := row.Scan(
		&r.ID, &r.ResourceID, &r.UserID, &r.BeginAt, &r.EndAt, &r.State,
		&r.Source, &r.ReserverName, &r.ConfirmedByStaffAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

const getReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (ReservationRow, error) {
	return scanReservationRow(db.QueryRow(ctx, getReservationByID, id))
}

// Local reservations touched since the given instant. Feeds the push half
// of a calendar sync run; cancelled rows are included so their external
// events can be removed.
const listReservationsForSync = `
SELECT ` + reservationColumns + ` FROM reservations
WHERE resource_id = $1 AND source = 'local' AND state IN ('confirmed', 'cancelled') AND updated_at > $2
ORDER BY begin_at, id`

func (q *Queries) ListReservationsForSync(ctx context.Context, db DBTX, resourceID uuid.UUID, since time.Time) ([]ReservationRow, error) {
	rows, err := db.Query(ctx, listReservationsForSync, resourceID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ReservationRow
	for rows.Next() {
		r, err := scanReservationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type CreateExternalReservationParams struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	UserID       pgtype.UUID
	BeginAt      time.Time
	EndAt        time.Time
	ReserverName pgtype.Text
}

const createExternalReservation = `
INSERT INTO reservations (id, resource_id, user_id, begin_at, end_at, state, source, reserver_name)
VALUES ($1, $2, $3, $4, $5, 'confirmed', 'o365', $6)`

func (q *Queries) CreateExternalReservation(ctx context.Context, db DBTX, arg CreateExternalReservationParams) error {
	_, err := db.Exec(ctx, createExternalReservation,
		arg.ID, arg.ResourceID, arg.UserID, arg.BeginAt, arg.EndAt, arg.ReserverName)
	return err
}

type UpdateReservationTimesParams struct {
	ID      uuid.UUID
	BeginAt time.Time
	EndAt   time.Time
}

const updateReservationTimes = `
UPDATE reservations SET begin_at = $2, end_at = $3, updated_at = now() WHERE id = $1`

func (q *Queries) UpdateReservationTimes(ctx context.Context, db DBTX, arg UpdateReservationTimesParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationTimes, arg.ID, arg.BeginAt, arg.EndAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const cancelReservation = `
UPDATE reservations SET state = 'cancelled', updated_at = now() WHERE id = $1`

func (q *Queries) CancelReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, cancelReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ReservationPaymentContextRow struct {
	ID                   uuid.UUID
	ConfirmedByStaffAt   pgtype.Timestamptz
	ResourceWaitingHours pgtype.Int4
	UnitWaitingHours     pgtype.Int4
	UnitTimeZone         string
}

// Everything the payment deadline needs in one round trip: the confirmation
// instant plus the resource-level and unit-level waiting time overrides.
const getReservationPaymentContext = `
SELECT rv.id, rv.confirmed_by_staff_at,
    rs.payment_requested_waiting_time, u.payment_requested_waiting_time, u.time_zone
FROM reservations rv
JOIN resources rs ON rs.id = rv.resource_id
JOIN units u ON u.id = rs.unit_id
WHERE rv.id = $1`

func (q *Queries) GetReservationPaymentContext(ctx context.Context, db DBTX, id uuid.UUID) (ReservationPaymentContextRow, error) {
	var r ReservationPaymentContextRow
	err := db.QueryRow(ctx, getReservationPaymentContext, id).Scan(
		&r.ID, &r.ConfirmedByStaffAt, &r.ResourceWaitingHours, &r.UnitWaitingHours, &r.UnitTimeZone)
	return r, err
}
