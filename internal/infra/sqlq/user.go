package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, first_name, last_name,
	is_staff, is_general_admin, is_superuser, is_active, last_login_at, created_at, updated_at`

type UserRow struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	FirstName      pgtype.Text
	LastName       pgtype.Text
	IsStaff        bool
	IsGeneralAdmin bool
	IsSuperuser    bool
	IsActive       bool
	LastLoginAt    pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func scanUserRow(row pgx.Row) (UserRow, error) {
	var u UserRow
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsStaff, &u.IsGeneralAdmin, &u.IsSuperuser, &u.IsActive,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (UserRow, error) {
	return scanUserRow(db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserRow, error) {
	return scanUserRow(db.QueryRow(ctx, getUserByID, id))
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    pgtype.Text
	LastName     pgtype.Text
}

const createUser = `
INSERT INTO users (id, email, password_hash, first_name, last_name,
	is_staff, is_general_admin, is_superuser, is_active)
VALUES ($1, $2, $3, $4, $5, FALSE, FALSE, FALSE, TRUE)`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser, arg.ID, arg.Email, arg.PasswordHash, arg.FirstName, arg.LastName)
	return err
}

// The RETURNING sub-select reads the statement snapshot, so it yields the
// flag as it was before the update.
const setUserStaff = `
UPDATE users SET is_staff = TRUE, updated_at = now()
WHERE id = $1
RETURNING (SELECT is_staff FROM users u WHERE u.id = $1)`

func (q *Queries) SetUserStaff(ctx context.Context, db DBTX, id uuid.UUID) (wasStaff bool, err error) {
	err = db.QueryRow(ctx, setUserStaff, id).Scan(&wasStaff)
	return wasStaff, err
}

const updateUserLastLogin = `UPDATE users SET last_login_at = $2, updated_at = now() WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at time.Time) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id, at)
	return err
}

// Approvers: active users who hold manager or admin on the unit (directly or
// through a group admin grant), plus general admins and superusers.
const listUnitApprovers = `
SELECT ` + userColumns + ` FROM users usr
WHERE usr.is_active
AND (
    usr.is_general_admin OR usr.is_superuser
    OR EXISTS (
        SELECT 1 FROM unit_authorizations ua
        WHERE ua.authorized_id = usr.id AND ua.subject_id = $1 AND ua.level IN ('manager', 'admin')
    )
    OR EXISTS (
        SELECT 1 FROM unit_group_authorizations uga
        JOIN unit_group_members ugm ON ugm.unit_group_id = uga.subject_id
        WHERE uga.authorized_id = usr.id AND ugm.unit_id = $1 AND uga.level = 'admin'
    )
)
ORDER BY usr.email`

func (q *Queries) ListUnitApprovers(ctx context.Context, db DBTX, unitID string) ([]UserRow, error) {
	rows, err := db.Query(ctx, listUnitApprovers, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UserRow
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
