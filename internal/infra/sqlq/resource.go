package sqlq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceRow struct {
	ID                          uuid.UUID
	UnitID                      string
	Name                        string
	Reservable                  bool
	PaymentRequestedWaitingTime pgtype.Int4
	OpeningHours                []byte
	CreatedAt                   pgtype.Timestamptz
	UpdatedAt                   pgtype.Timestamptz
}

const getResourceByID = `
SELECT id, unit_id, name, reservable, payment_requested_waiting_time, opening_hours, created_at, updated_at
FROM resources WHERE id = $1`

func (q *Queries) GetResourceByID(ctx context.Context, db DBTX, id uuid.UUID) (ResourceRow, error) {
	var r ResourceRow
	err := db.QueryRow(ctx, getResourceByID, id).Scan(
		&r.ID, &r.UnitID, &r.Name, &r.Reservable, &r.PaymentRequestedWaitingTime,
		&r.OpeningHours, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

const updateResourceOpeningHours = `
UPDATE resources SET opening_hours = $2, updated_at = now() WHERE id = $1`

func (q *Queries) UpdateResourceOpeningHours(ctx context.Context, db DBTX, id uuid.UUID, hours []byte) error {
	_, err := db.Exec(ctx, updateResourceOpeningHours, id, hours)
	return err
}

const deletePeriodsByResource = `DELETE FROM periods WHERE resource_id = $1`

func (q *Queries) DeletePeriodsByResource(ctx context.Context, db DBTX, resourceID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deletePeriodsByResource, resourceID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
