package response

import (
	"time"

	"resource-booking-api/internal/usecase/queries"
)

type PaymentDeadlineResponse struct {
	ReservationID string `json:"reservation_id"`
	Deadline      string `json:"deadline"`
	Display       string `json:"display"`
}

func FromPaymentDeadlineView(v *queries.PaymentDeadlineView) *PaymentDeadlineResponse {
	return &PaymentDeadlineResponse{
		ReservationID: v.ReservationID.String(),
		Deadline:      v.Deadline.Format(time.RFC3339),
		Display:       v.Display,
	}
}
