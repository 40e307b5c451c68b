package readstore

import (
	"context"

	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitViewQueries interface {
	GetUnitByID(ctx context.Context, db sqlq.DBTX, id string) (sqlq.UnitRow, error)
	ListUnits(ctx context.Context, db sqlq.DBTX) ([]sqlq.UnitRow, error)
	ListManagedUnits(ctx context.Context, db sqlq.DBTX, userID uuid.UUID) ([]sqlq.UnitRow, error)
	ListUnitsByRoleLevels(ctx context.Context, db sqlq.DBTX, arg sqlq.ListUnitsByRoleLevelsParams) ([]sqlq.UnitRow, error)
	ListHighestAuthorizationsPerUser(ctx context.Context, db sqlq.DBTX, subjectID string) ([]sqlq.UnitAuthorizationRow, error)
	ListUnitApprovers(ctx context.Context, db sqlq.DBTX, unitID string) ([]sqlq.UserRow, error)
	GetAuthorizationLevels(ctx context.Context, db sqlq.DBTX, arg sqlq.GetAuthorizationLevelsParams) ([]string, error)
}

type UnitReadStore struct {
	queries UnitViewQueries
	db      sqlq.DBTX
}

func NewUnitReadStore(queries UnitViewQueries, db sqlq.DBTX) *UnitReadStore {
	return &UnitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UnitReadStore) FindByID(ctx context.Context, id string) (*queries.UnitView, error) {
	row, err := r.queries.GetUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get unit by id", err)
	}
	return toUnitView(row), nil
}

func (r *UnitReadStore) List(ctx context.Context) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListUnits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units", err)
	}
	return toUnitViews(rows), nil
}

func (r *UnitReadStore) ListManagedBy(ctx context.Context, userID uuid.UUID) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListManagedUnits(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list managed units", err)
	}
	return toUnitViews(rows), nil
}

func (r *UnitReadStore) ListByRoleLevels(ctx context.Context, userID uuid.UUID, unitLevels, groupLevels []string) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListUnitsByRoleLevels(ctx, r.db, sqlq.ListUnitsByRoleLevelsParams{
		UserID:      userID,
		UnitLevels:  unitLevels,
		GroupLevels: groupLevels,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units by role levels", err)
	}
	return toUnitViews(rows), nil
}

func (r *UnitReadStore) HighestAuthorizationsPerUser(ctx context.Context, unitID string) ([]*queries.UnitAuthorizationView, error) {
	rows, err := r.queries.ListHighestAuthorizationsPerUser(ctx, r.db, unitID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list highest authorizations", err)
	}
	out := make([]*queries.UnitAuthorizationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.UnitAuthorizationView{
			ID:     row.ID,
			UnitID: row.SubjectID,
			UserID: row.AuthorizedID,
			Level:  row.Level,
		})
	}
	return out, nil
}

func (r *UnitReadStore) Approvers(ctx context.Context, unitID string) ([]*queries.ApproverView, error) {
	rows, err := r.queries.ListUnitApprovers(ctx, r.db, unitID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unit approvers", err)
	}
	out := make([]*queries.ApproverView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.ApproverView{
			ID:        row.ID,
			Email:     row.Email,
			FirstName: pgconv.StringPtrFromPgtype(row.FirstName),
			LastName:  pgconv.StringPtrFromPgtype(row.LastName),
		})
	}
	return out, nil
}

func (r *UnitReadStore) AuthorizationLevels(ctx context.Context, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error) {
	raw, err := r.queries.GetAuthorizationLevels(ctx, r.db, sqlq.GetAuthorizationLevelsParams{
		SubjectID:    unitID,
		AuthorizedID: userID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get authorization levels", err)
	}
	levels := make([]unit.AuthorizationLevel, 0, len(raw))
	for _, s := range raw {
		level, err := unit.NewAuthorizationLevel(s)
		if err != nil {
			return nil, infra.WrapRepoErr("unknown authorization level in store", err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func toUnitView(row sqlq.UnitRow) *queries.UnitView {
	return &queries.UnitView{
		ID:                         row.ID,
		Name:                       row.Name,
		TimeZone:                   row.TimeZone,
		StreetAddress:              pgconv.StringPtrFromPgtype(row.StreetAddress),
		ZipCode:                    pgconv.StringPtrFromPgtype(row.ZipCode),
		Phone:                      pgconv.StringPtrFromPgtype(row.Phone),
		Email:                      pgconv.StringPtrFromPgtype(row.Email),
		WwwURL:                     pgconv.StringPtrFromPgtype(row.WwwURL),
		ManagerEmail:               pgconv.StringPtrFromPgtype(row.ManagerEmail),
		ReservableMaxDaysInAdvance: pgconv.Int32PtrFromPgtype(row.ReservableMaxDaysInAdvance),
		ReservableMinDaysInAdvance: pgconv.Int32PtrFromPgtype(row.ReservableMinDaysInAdvance),
		DataSource:                 pgconv.StringPtrFromPgtype(row.DataSource),
		CreatedAt:                  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:                  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toUnitViews(rows []sqlq.UnitRow) []*queries.UnitView {
	out := make([]*queries.UnitView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUnitView(row))
	}
	return out
}
