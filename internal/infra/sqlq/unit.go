package sqlq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const unitColumns = `id, name, time_zone, street_address, zip_code, phone, email, www_url,
	manager_email, reservable_max_days_in_advance, reservable_min_days_in_advance,
	data_source, data_source_hours, payment_requested_waiting_time, created_at, updated_at`

type UnitRow struct {
	ID                          string
	Name                        string
	TimeZone                    string
	StreetAddress               pgtype.Text
	ZipCode                     pgtype.Text
	Phone                       pgtype.Text
	Email                       pgtype.Text
	WwwURL                      pgtype.Text
	ManagerEmail                pgtype.Text
	ReservableMaxDaysInAdvance  pgtype.Int4
	ReservableMinDaysInAdvance  pgtype.Int4
	DataSource                  pgtype.Text
	DataSourceHours             pgtype.Text
	PaymentRequestedWaitingTime pgtype.Int4
	CreatedAt                   pgtype.Timestamptz
	UpdatedAt                   pgtype.Timestamptz
}

func scanUnitRow(row pgx.Row) (UnitRow, error) {
	var u UnitRow
	err := row.Scan(
		&u.ID, &u.Name, &u.TimeZone, &u.StreetAddress, &u.ZipCode, &u.Phone,
		&u.Email, &u.WwwURL, &u.ManagerEmail, &u.ReservableMaxDaysInAdvance,
		&u.ReservableMinDaysInAdvance, &u.DataSource, &u.DataSourceHours,
		&u.PaymentRequestedWaitingTime, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func collectUnitRows(rows pgx.Rows) ([]UnitRow, error) {
	defer rows.Close()
	var out []UnitRow
	for rows.Next() {
		u, err := scanUnitRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

const getUnitByID = `SELECT ` + unitColumns + ` FROM units WHERE id = $1`

func (q *Queries) GetUnitByID(ctx context.Context, db DBTX, id string) (UnitRow, error) {
	return scanUnitRow(db.QueryRow(ctx, getUnitByID, id))
}

const listUnits = `SELECT ` + unitColumns + ` FROM units ORDER BY name, id`

func (q *Queries) ListUnits(ctx context.Context, db DBTX) ([]UnitRow, error) {
	rows, err := db.Query(ctx, listUnits)
	if err != nil {
		return nil, err
	}
	return collectUnitRows(rows)
}

// A unit is managed when the user holds a manager or admin authorization on it
// directly, or an admin authorization on a group containing it.
const listManagedUnits = `
SELECT ` + unitColumns + ` FROM units u
WHERE EXISTS (
    SELECT 1 FROM unit_authorizations ua
    WHERE ua.subject_id = u.id AND ua.authorized_id = $1 AND ua.level IN ('manager', 'admin')
)
OR EXISTS (
    SELECT 1 FROM unit_group_authorizations uga
    JOIN unit_group_members ugm ON ugm.unit_group_id = uga.subject_id
    WHERE ugm.unit_id = u.id AND uga.authorized_id = $1 AND uga.level = 'admin'
)
ORDER BY u.name, u.id`

func (q *Queries) ListManagedUnits(ctx context.Context, db DBTX, userID uuid.UUID) ([]UnitRow, error) {
	rows, err := db.Query(ctx, listManagedUnits, userID)
	if err != nil {
		return nil, err
	}
	return collectUnitRows(rows)
}

type ListUnitsByRoleLevelsParams struct {
	UserID      uuid.UUID
	UnitLevels  []string
	GroupLevels []string
}

// Empty level slices make their arm vacuous: `level = ANY('{}')` matches nothing.
const listUnitsByRoleLevels = `
SELECT ` + unitColumns + ` FROM units u
WHERE EXISTS (
    SELECT 1 FROM unit_authorizations ua
    WHERE ua.subject_id = u.id AND ua.authorized_id = $1 AND ua.level = ANY($2::text[])
)
OR EXISTS (
    SELECT 1 FROM unit_group_authorizations uga
    JOIN unit_group_members ugm ON ugm.unit_group_id = uga.subject_id
    WHERE ugm.unit_id = u.id AND uga.authorized_id = $1 AND uga.level = ANY($3::text[])
)
ORDER BY u.name, u.id`

func (q *Queries) ListUnitsByRoleLevels(ctx context.Context, db DBTX, arg ListUnitsByRoleLevelsParams) ([]UnitRow, error) {
	rows, err := db.Query(ctx, listUnitsByRoleLevels, arg.UserID, arg.UnitLevels, arg.GroupLevels)
	if err != nil {
		return nil, err
	}
	return collectUnitRows(rows)
}

type CreateUnitIdentifierParams struct {
	ID        uuid.UUID
	UnitID    string
	Namespace string
	Value     string
}

const createUnitIdentifier = `
INSERT INTO unit_identifiers (id, unit_id, namespace, value)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateUnitIdentifier(ctx context.Context, db DBTX, arg CreateUnitIdentifierParams) error {
	_, err := db.Exec(ctx, createUnitIdentifier, arg.ID, arg.UnitID, arg.Namespace, arg.Value)
	return err
}

type UnitIdentifierRow struct {
	ID        uuid.UUID
	UnitID    string
	Namespace string
	Value     string
}

const listUnitIdentifiers = `
SELECT id, unit_id, namespace, value FROM unit_identifiers
WHERE unit_id = $1 ORDER BY namespace`

func (q *Queries) ListUnitIdentifiers(ctx context.Context, db DBTX, unitID string) ([]UnitIdentifierRow, error) {
	rows, err := db.Query(ctx, listUnitIdentifiers, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UnitIdentifierRow
	for rows.Next() {
		var r UnitIdentifierRow
		if err := rows.Scan(&r.ID, &r.UnitID, &r.Namespace, &r.Value); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
