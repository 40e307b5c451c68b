package repository

import (
	"context"
	"time"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	SetUserStaff(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (wasStaff bool, err error)
	UpdateUserLastLogin(ctx context.Context, db sqlq.DBTX, id uuid.UUID, at time.Time) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

// SetStaff marks the user as staff and reports whether the flag actually
// flipped, so callers can tell a promotion from a no-op.
func (r *UserRepository) SetStaff(ctx context.Context, tx sqlq.DBTX, userID uuid.UUID) (promoted bool, err error) {
	wasStaff, err := r.queries.SetUserStaff(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to set user staff flag", err)
	}
	return !wasStaff, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlq.DBTX, userID uuid.UUID, at time.Time) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID, at); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
