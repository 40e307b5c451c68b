package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resource-booking-api/internal/domain/reservation"
	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/pkg/patch"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationNotConfirmed = errs.New("reservation has no staff confirmation")
	ErrNoPaymentDeadline       = errs.New("no payment waiting time configured")
)

type ReservationQueries interface {
	GetPaymentDeadline(ctx context.Context, reservationID uuid.UUID) (*PaymentDeadlineView, error)
}

type ReservationReadStore interface {
	PaymentContext(ctx context.Context, reservationID uuid.UUID) (*PaymentContextView, error)
}

type reservationQueriesImpl struct {
	readStore    ReservationReadStore
	defaultHours int
}

func NewReservationQueries(readStore ReservationReadStore, defaultWaitingHours int) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:    readStore,
		defaultHours: defaultWaitingHours,
	}
}

func (q *reservationQueriesImpl) GetPaymentDeadline(ctx context.Context, reservationID uuid.UUID) (*PaymentDeadlineView, error) {
	pc, err := q.readStore.PaymentContext(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if pc.ConfirmedByStaffAt == nil {
		return nil, ErrReservationNotConfirmed
	}

	loc, err := time.LoadLocation(pc.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid unit time zone")
	}

	spec := reservation.WaitingTimeSpec{
		ResourceHours: int(patch.Coalesce(pc.ResourceWaitingHours, 0)),
		UnitHours:     int(patch.Coalesce(pc.UnitWaitingHours, 0)),
		DefaultHours:  q.defaultHours,
	}

	deadline, err := reservation.PaymentRequestedDeadline(*pc.ConfirmedByStaffAt, spec, loc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve payment deadline")
	}
	if deadline.IsZero() {
		return nil, ErrNoPaymentDeadline
	}

	return &PaymentDeadlineView{
		ReservationID: reservationID,
		Deadline:      deadline,
		Display:       reservation.FormatDeadline(deadline),
	}, nil
}
