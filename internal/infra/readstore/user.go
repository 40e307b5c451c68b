package readstore

import (
	"context"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.UserRow, error)
	GetUserByEmail(ctx context.Context, db sqlq.DBTX, email string) (sqlq.UserRow, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlq.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqlq.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row sqlq.UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:             row.ID,
		Email:          row.Email,
		FirstName:      pgconv.StringPtrFromPgtype(row.FirstName),
		LastName:       pgconv.StringPtrFromPgtype(row.LastName),
		IsStaff:        row.IsStaff,
		IsGeneralAdmin: row.IsGeneralAdmin,
		IsSuperuser:    row.IsSuperuser,
		IsActive:       row.IsActive,
		LastLoginAt:    pgconv.TimePtrFromPgtype(row.LastLoginAt),
	}
}
