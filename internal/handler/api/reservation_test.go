//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/handler/api"
	resdto "cinema-checkout/internal/handler/dto/response"
	"cinema-checkout/internal/handler/middleware"
	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase/commands"
	"cinema-checkout/internal/usecase/queries"
	"cinema-checkout/tests/common/authtest"
	"cinema-checkout/tests/common/httptest"
	commandsmock "cinema-checkout/tests/mock/commands"
	queriesmock "cinema-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	jwt          *authtest.JWTHelper
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.jwt = authtest.NewJWTHelper(cfg.Sandbox)

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries, s.jwt.Service(), cfg)
	mw := middleware.NewReservationMiddleware(commands.NewTokenValidator(s.jwt.Service()))
	s.router.POST("/reservations", h.Open)
	s.router.POST("/get-reservation", mw.RequireReservation(), h.Get)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestOpen() {
	id := uuid.New()
	day := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	result := &commands.OpenResult{
		ReservationID: id,
		ProjectionDay: day,
		ExpiresAt:     time.Date(2026, 10, 19, 22, 0, 0, 0, time.UTC),
		Seats:         []seat.ID{"A1", "A2"},
	}

	s.Run("success: returns a token that resolves to the reservation", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), day).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", map[string]any{"projection_day": "2026-10-21"})

		var res resdto.OpenReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal([]string{"A1", "A2"}, res.Seats)
		s.Equal("2026-10-21", res.ProjectionDay)

		resolved, err := commands.NewTokenValidator(s.jwt.Service()).ValidateToken(res.ReservationID)
		s.Require().NoError(err)
		s.Equal(id, resolved)
	})

	s.Run("success: empty body means today", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), time.Time{}).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 for a malformed day", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", map[string]any{"projection_day": "21/10/2026"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid projection day")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), day).Return(nil, errors.New("boom"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", map[string]any{"projection_day": "2026-10-21"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	id := uuid.New()
	token := s.jwt.GenerateToken(s.T(), id)
	form := url.Values{middleware.FieldReservationID: {token}}

	s.Run("success: returns the reservation view", func() {
		view := &queries.ReservationView{
			ID:            id,
			ProjectionDay: "2026-10-21",
			Status:        "open",
			Seats: []queries.SeatView{
				{ID: "A1", Availability: queries.SeatMine, Status: "selezionato"},
			},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)
		rec := httptest.PerformForm(s.T(), s.router, "/get-reservation", form)

		var res queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(id, res.ID)
		s.Equal(view.Seats, res.Seats)
	})

	s.Run("error: 404 for an unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(infra.NewError(infra.KindNotFound, "reservation"), queries.ErrReservationNotFound))
		rec := httptest.PerformForm(s.T(), s.router, "/get-reservation", form)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 500 when the read fails", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("boom"))
		rec := httptest.PerformForm(s.T(), s.router, "/get-reservation", form)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformForm(s.T(), s.router, "/get-reservation", url.Values{})
		httptest.AssertTextResponse(s.T(), rec, http.StatusUnauthorized, "reservation id required")
	})
}
