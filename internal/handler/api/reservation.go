package api

import (
	"errors"
	"net/http"

	resdto "resource-booking-api/internal/handler/dto/response"
	"resource-booking-api/internal/handler/httperr"
	"resource-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries: reservationQueries,
	}
}

// @Summary Payment deadline for a reservation
// @Description Deadline derived from the staff confirmation time and the configured waiting hours
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PaymentDeadlineResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/payment-deadline [get]
func (h *ReservationHandler) GetPaymentDeadline(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation id",
		})
		return
	}

	view, err := h.reservationQueries.GetPaymentDeadline(c.Request.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, queries.ErrReservationNotConfirmed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation has not been confirmed by staff",
			})
		case errors.Is(err, queries.ErrNoPaymentDeadline):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No payment waiting time configured",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentDeadlineView(view))
}
