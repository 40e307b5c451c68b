package repository

import (
	"context"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	DeletePeriodsByResource(ctx context.Context, db sqlq.DBTX, resourceID uuid.UUID) (int64, error)
	UpdateResourceOpeningHours(ctx context.Context, db sqlq.DBTX, id uuid.UUID, hours []byte) error
}

type ResourceRepository struct {
	queries ResourceWriteQueries
}

func NewResourceRepository(queries ResourceWriteQueries) *ResourceRepository {
	return &ResourceRepository{queries: queries}
}

func (r *ResourceRepository) DeletePeriods(ctx context.Context, tx sqlq.DBTX, resourceID uuid.UUID) (int64, error) {
	affected, err := r.queries.DeletePeriodsByResource(ctx, tx, resourceID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete resource periods", err)
	}
	return affected, nil
}

func (r *ResourceRepository) UpdateOpeningHours(ctx context.Context, tx sqlq.DBTX, resourceID uuid.UUID, hours []byte) error {
	if err := r.queries.UpdateResourceOpeningHours(ctx, tx, resourceID, hours); err != nil {
		return infra.WrapRepoErr("failed to update resource opening hours", err)
	}
	return nil
}
