package readstore

import (
	"context"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/pkg/pgconv"
	"resource-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationPaymentContext(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.ReservationPaymentContextRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlq.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlq.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) PaymentContext(ctx context.Context, reservationID uuid.UUID) (*queries.PaymentContextView, error) {
	row, err := r.queries.GetReservationPaymentContext(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation payment context", err)
	}
	return &queries.PaymentContextView{
		ReservationID:        row.ID,
		ConfirmedByStaffAt:   pgconv.TimePtrFromPgtype(row.ConfirmedByStaffAt),
		ResourceWaitingHours: pgconv.Int32PtrFromPgtype(row.ResourceWaitingHours),
		UnitWaitingHours:     pgconv.Int32PtrFromPgtype(row.UnitWaitingHours),
		TimeZone:             row.UnitTimeZone,
	}, nil
}
