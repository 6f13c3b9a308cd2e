package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRM struct {
	ID            uuid.UUID `json:"id"`
	ProjectionDay time.Time `json:"projection_day"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expires_at"`
	UnderAge      int       `json:"under_age"`
	OverAge       int       `json:"over_age"`
	CouponCode    *string   `json:"coupon_code,omitempty"`
}

// SeatRM is one seat of the projection. Owner is uuid.Nil for a free seat.
type SeatRM struct {
	ID    string    `json:"id"`
	Owner uuid.UUID `json:"owner"`
}
