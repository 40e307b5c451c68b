package sqlq

import (
	"context"

	"github.com/google/uuid"
)

type UnitAuthorizationRow struct {
	ID           uuid.UUID
	SubjectID    string
	AuthorizedID uuid.UUID
	Level        string
}

type CreateUnitAuthorizationParams struct {
	ID           uuid.UUID
	SubjectID    string
	AuthorizedID uuid.UUID
	Level        string
}

const createUnitAuthorization = `
INSERT INTO unit_authorizations (id, subject_id, authorized_id, level)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateUnitAuthorization(ctx context.Context, db DBTX, arg CreateUnitAuthorizationParams) error {
	_, err := db.Exec(ctx, createUnitAuthorization, arg.ID, arg.SubjectID, arg.AuthorizedID, arg.Level)
	return err
}

type GetAuthorizationLevelsParams struct {
	SubjectID    string
	AuthorizedID uuid.UUID
}

const getAuthorizationLevels = `
SELECT level FROM unit_authorizations
WHERE subject_id = $1 AND authorized_id = $2`

// GetAuthorizationLevels returns the raw level strings a user holds on a unit.
// Ranking them is the caller's business.
func (q *Queries) GetAuthorizationLevels(ctx context.Context, db DBTX, arg GetAuthorizationLevelsParams) ([]string, error) {
	rows, err := db.Query(ctx, getAuthorizationLevels, arg.SubjectID, arg.AuthorizedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var level string
		if err := rows.Scan(&level); err != nil {
			return nil, err
		}
		out = append(out, level)
	}
	return out, rows.Err()
}

const listUnitAuthorizations = `
SELECT id, subject_id, authorized_id, level FROM unit_authorizations
WHERE subject_id = $1
ORDER BY authorized_id, level`

func (q *Queries) ListUnitAuthorizations(ctx context.Context, db DBTX, subjectID string) ([]UnitAuthorizationRow, error) {
	rows, err := db.Query(ctx, listUnitAuthorizations, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UnitAuthorizationRow
	for rows.Next() {
		var r UnitAuthorizationRow
		if err := rows.Scan(&r.ID, &r.SubjectID, &r.AuthorizedID, &r.Level); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// One row per user: their strongest authorization on the unit. DISTINCT ON with
// an explicit rank expression keeps the reduction inside postgres.
const listHighestAuthorizationsPerUser = `
SELECT DISTINCT ON (authorized_id) id, subject_id, authorized_id, level
FROM unit_authorizations
WHERE subject_id = $1
ORDER BY authorized_id,
    CASE level WHEN 'admin' THEN 3 WHEN 'manager' THEN 2 WHEN 'viewer' THEN 1 ELSE 0 END DESC`

func (q *Queries) ListHighestAuthorizationsPerUser(ctx context.Context, db DBTX, subjectID string) ([]UnitAuthorizationRow, error) {
	rows, err := db.Query(ctx, listHighestAuthorizationsPerUser, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UnitAuthorizationRow
	for rows.Next() {
		var r UnitAuthorizationRow
		if err := rows.Scan(&r.ID, &r.SubjectID, &r.AuthorizedID, &r.Level); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
