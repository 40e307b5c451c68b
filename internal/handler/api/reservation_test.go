//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"resource-booking-api/internal/handler/api"
	resdto "resource-booking-api/internal/handler/dto/response"
	"resource-booking-api/internal/usecase/queries"
	"resource-booking-api/tests/common/httptest"
	queriesmock "resource-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	handler     *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockQueries)

	s.router.GET("/reservations/:id/payment-deadline", s.handler.GetPaymentDeadline)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestGetPaymentDeadline() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/payment-deadline"

	s.Run("success: returns deadline with display string", func() {
		helsinki, err := time.LoadLocation("Europe/Helsinki")
		s.Require().NoError(err)
		deadline := time.Date(2022, 1, 12, 12, 0, 0, 0, helsinki)
		s.mockQueries.EXPECT().GetPaymentDeadline(gomock.Any(), reservationID).
			Return(&queries.PaymentDeadlineView{
				ReservationID: reservationID,
				Deadline:      deadline,
				Display:       "12.01.2022 12:00",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PaymentDeadlineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID.String(), response.ReservationID)
		s.Equal(deadline.Format(time.RFC3339), response.Deadline)
		s.Equal("12.01.2022 12:00", response.Display)
	})

	s.Run("error: malformed reservation id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope/payment-deadline", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				queriesError:   queries.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not confirmed by staff",
				queriesError:   queries.ErrReservationNotConfirmed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Reservation has not been confirmed by staff",
			},
			{
				name:           "no waiting time configured",
				queriesError:   queries.ErrNoPaymentDeadline,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No payment waiting time configured",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetPaymentDeadline(gomock.Any(), reservationID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
