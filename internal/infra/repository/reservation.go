package repository

import (
	"context"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateExternalReservation(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateExternalReservationParams) error
	UpdateReservationTimes(ctx context.Context, db sqlq.DBTX, arg sqlq.UpdateReservationTimesParams) (int64, error)
	CancelReservation(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) CreateExternal(ctx context.Context, tx sqlq.DBTX, arg sqlq.CreateExternalReservationParams) error {
	if err := r.queries.CreateExternalReservation(ctx, tx, arg); err != nil {
		return infra.WrapRepoErr("failed to create external reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateTimes(ctx context.Context, tx sqlq.DBTX, arg sqlq.UpdateReservationTimesParams) error {
	affected, err := r.queries.UpdateReservationTimes(ctx, tx, arg)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation times", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, tx sqlq.DBTX, reservationID uuid.UUID) error {
	affected, err := r.queries.CancelReservation(ctx, tx, reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
