package repository

import (
	"context"

	"resource-booking-api/internal/domain/unit"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
)

type UnitAuthorizationQueries interface {
	CreateUnitAuthorization(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateUnitAuthorizationParams) error
	GetAuthorizationLevels(ctx context.Context, db sqlq.DBTX, arg sqlq.GetAuthorizationLevelsParams) ([]string, error)
}

type UnitAuthorizationRepository struct {
	queries UnitAuthorizationQueries
}

func NewUnitAuthorizationRepository(queries UnitAuthorizationQueries) *UnitAuthorizationRepository {
	return &UnitAuthorizationRepository{queries: queries}
}

func (r *UnitAuthorizationRepository) Create(ctx context.Context, tx sqlq.DBTX, auth *unit.UnitAuthorization) error {
	params := sqlq.CreateUnitAuthorizationParams{
		ID:           auth.ID(),
		SubjectID:    auth.SubjectID(),
		AuthorizedID: auth.AuthorizedID(),
		Level:        auth.Level().String(),
	}
	if err := r.queries.CreateUnitAuthorization(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create unit authorization", err)
	}
	return nil
}

func (r *UnitAuthorizationRepository) LevelsFor(ctx context.Context, tx sqlq.DBTX, unitID string, userID uuid.UUID) ([]unit.AuthorizationLevel, error) {
	raw, err := r.queries.GetAuthorizationLevels(ctx, tx, sqlq.GetAuthorizationLevelsParams{
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
