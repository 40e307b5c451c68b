package readstore

import (
	"context"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceViewQueries interface {
	GetResourceByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.ResourceRow, error)
}

type ResourceReadStore struct {
	queries ResourceViewQueries
	db      sqlq.DBTX
}

func NewResourceReadStore(queries ResourceViewQueries, db sqlq.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resource by id", err)
	}
	return &queries.ResourceView{
		ID:                          row.ID,
		UnitID:                      row.UnitID,
		Name:                        row.Name,
		Reservable:                  row.Reservable,
		PaymentRequestedWaitingTime: pgconv.Int32PtrFromPgtype(row.PaymentRequestedWaitingTime),
		CreatedAt:                   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:                   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
