package api

import (
	"net/http"

	reqdto "cinema-checkout/internal/handler/dto/request"
	"cinema-checkout/internal/handler/httperr"
	"cinema-checkout/internal/handler/middleware"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Checkout endpoints answer in plain text: "ok" on success, anything else
// is a failure the client shows as an alert. Domain failures are still 200.
const replyOK = "ok"

type CheckoutHandler struct {
	commands commands.ReservationCommands
}

func NewCheckoutHandler(cmds commands.ReservationCommands) *CheckoutHandler {
	return &CheckoutHandler{
		commands: cmds,
	}
}

// @Summary Update seat status
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param reservation-id formData string true "Reservation id"
// @Param seat-id formData string true "Seat id"
// @Param seat-status formData string true "disponibile or selezionato"
// @Success 200 {string} string "ok or failure reason"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Router /update-seat-status [post]
func (h *CheckoutHandler) UpdateSeatStatus(c *gin.Context) {
	reservationID, ok := h.reservation(c)
	if !ok {
		return
	}
	var req reqdto.SeatStatusRequest
	if !bindForm(c, &req) {
		return
	}
	h.reply(c, h.commands.UpdateSeatStatus(c.Request.Context(), reservationID, req.Seat(), req.Status))
}

// @Summary Update age discount
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param reservation-id formData string true "Reservation id"
// @Param under-age formData int true "Spectators under the age threshold"
// @Param over-age formData int true "Spectators over the age threshold"
// @Success 200 {string} string "ok or failure reason"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Router /update-age-discount [post]
func (h *CheckoutHandler) UpdateAgeDiscount(c *gin.Context) {
	reservationID, ok := h.reservation(c)
	if !ok {
		return
	}
	var req reqdto.AgeDiscountRequest
	if !bindForm(c, &req) {
		return
	}
	h.reply(c, h.commands.UpdateAgeDiscount(c.Request.Context(), reservationID, *req.UnderAge, *req.OverAge))
}

// @Summary Apply coupon
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param reservation-id formData string true "Reservation id"
// @Param coupon-code formData string true "Coupon code"
// @Success 200 {string} string "ok or failure reason"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Router /apply-coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	reservationID, ok := h.reservation(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if !bindForm(c, &req) {
		return
	}
	h.reply(c, h.commands.ApplyCoupon(c.Request.Context(), reservationID, req.Code))
}

// @Summary Buy
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param reservation-id formData string true "Reservation id"
// @Param email formData string true "Buyer email"
// @Param card-owner formData string true "Card owner"
// @Param card-number formData string true "Card number"
// @Param card-cvv formData string true "Card security code"
// @Param card-expiration formData string true "MM/YY"
// @Success 200 {string} string "ok or failure reason"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Router /buy [post]
func (h *CheckoutHandler) Buy(c *gin.Context) {
	reservationID, ok := h.reservation(c)
	if !ok {
		return
	}
	var req reqdto.PurchaseRequest
	if !bindForm(c, &req) {
		return
	}
	h.reply(c, h.commands.Purchase(c.Request.Context(), reservationID, req.ToPayment()))
}

// @Summary Get checkout info
// @Description Newline separated cart summary
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param reservation-id formData string true "Reservation id"
// @Success 200 {string} string "cart summary or failure reason"
// @Failure 401 {string} string
// @Router /get-checkout-info [post]
func (h *CheckoutHandler) GetCheckoutInfo(c *gin.Context) {
	reservationID, ok := h.reservation(c)
	if !ok {
		return
	}
	body, err := h.commands.CheckoutInfo(c.Request.Context(), reservationID)
	if err != nil {
		h.reply(c, err)
		return
	}
	c.String(http.StatusOK, body)
}

func (h *CheckoutHandler) reservation(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetReservationID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "internal server error")
		c.Abort()
	}
	return id, ok
}

func (h *CheckoutHandler) reply(c *gin.Context, err error) {
	if err == nil {
		c.String(http.StatusOK, replyOK)
		return
	}
	if errs.Is(err, commands.ErrDatabaseOperationFailed) || !isDomainFailure(err) {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	_ = c.Error(err)
	c.String(http.StatusOK, failureReason(err))
}

var domainFailures = []error{
	commands.ErrReservationNotFound,
	commands.ErrReservationExpired,
	commands.ErrReservationPaid,
	commands.ErrSeatNotFound,
	commands.ErrSeatTaken,
	commands.ErrInvalidSeatStatus,
	commands.ErrInvalidAgeCounts,
	commands.ErrCouponNotFound,
	commands.ErrCouponUsed,
	commands.ErrCouponAlreadyApplied,
	commands.ErrInvalidCoupon,
	commands.ErrEmptyReservation,
	commands.ErrPaymentRejected,
}

func isDomainFailure(err error) bool {
	for _, target := range domainFailures {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}

// failureReason names the most specific sentinel in the chain.
func failureReason(err error) string {
	for _, target := range domainFailures {
		if errs.Is(err, target) {
			reason := target.Error()
			if errs.Is(err, commands.ErrPaymentRejected) {
				reason = paymentReason(err)
			}
			return "error: " + reason
		}
	}
	return "error"
}

func paymentReason(err error) string {
	for _, target := range []error{
		commands.ErrInvalidEmail,
		commands.ErrMissingCardOwner,
		commands.ErrInvalidCardNumber,
		commands.ErrInvalidCVV,
		commands.ErrInvalidExpiration,
		commands.ErrCardExpired,
	} {
		if errs.Is(err, target) {
			return commands.ErrPaymentRejected.Error() + ": " + target.Error()
		}
	}
	return commands.ErrPaymentRejected.Error()
}

func bindForm(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		httperr.AbortWithText(c, http.StatusBadRequest, err, "bad request")
		return false
	}
	return true
}
