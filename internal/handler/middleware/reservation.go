package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cinema-checkout/internal/handler/httperr"
	"cinema-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	FieldReservationID     = "reservation-id"
	ctxReservationIDKey    = "reservation_id"
	ctxReservationClaimKey = "reservation_claims"
)

type ReservationMiddleware struct {
	tokenValidator commands.TokenValidator
}

func NewReservationMiddleware(tokenValidator commands.TokenValidator) *ReservationMiddleware {
	return &ReservationMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireReservation resolves the reservation-id form field. Requests
// without a valid one never reach the handler.
func (m *ReservationMiddleware) RequireReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.PostForm(FieldReservationID))
		if token == "" {
			httperr.AbortWithText(c, http.StatusUnauthorized, commands.ErrInvalidReservationToken, "reservation id required")
			return
		}

		reservationID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Reservation token rejected", "error", err.Error())
			httperr.AbortWithText(c, http.StatusUnauthorized, err, "invalid reservation id")
			return
		}

		c.Set(ctxReservationIDKey, reservationID)
		c.Set(ctxReservationClaimKey, map[string]any{
			"reservation_id": reservationID.String(),
		})
		c.Next()
	}
}

func GetReservationID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxReservationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
