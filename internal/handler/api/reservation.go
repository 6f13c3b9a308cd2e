package api

import (
	"errors"
	"net/http"

	reqdto "cinema-checkout/internal/handler/dto/request"
	resdto "cinema-checkout/internal/handler/dto/response"
	"cinema-checkout/internal/handler/httperr"
	"cinema-checkout/internal/handler/middleware"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase/commands"
	"cinema-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
	issuer   commands.TokenIssuer
	layout   string
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries, issuer commands.TokenIssuer, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
		issuer:   issuer,
		layout:   cfg.Sandbox.ProjectionLayout,
	}
}

// @Summary Open reservation
// @Description Open an empty reservation and return its opaque id with the seat map
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.OpenReservationRequest false "Projection day"
// @Success 201 {object} resdto.OpenReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Open(c *gin.Context) {
	var req reqdto.OpenReservationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	day, err := req.Day(h.layout)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid projection day", gin.H{"layout": h.layout})
		return
	}

	res, err := h.commands.Open(c.Request.Context(), day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	token, err := h.issuer.GenerateToken(res.ReservationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.Join(commands.ErrInvalidReservationToken, err), "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOpenResult(res, token))
}

// @Summary Get reservation
// @Description Reservation state with the availability of every seat of the projection
// @Tags reservations
// @Accept x-www-form-urlencoded
// @Produce json
// @Param reservation-id formData string true "Reservation id"
// @Success 200 {object} queries.ReservationView
// @Failure 401 {string} string
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /get-reservation [post]
func (h *ReservationHandler) Get(c *gin.Context) {
	reservationID, ok := middleware.GetReservationID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, commands.ErrInvalidReservationToken, "Internal server error", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), reservationID)
	if err != nil {
		if errs.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
