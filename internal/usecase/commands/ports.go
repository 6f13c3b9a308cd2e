package commands

import (
	"context"
	"time"

	"cinema-checkout/internal/domain/seat"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// ReservationCommands is the sandbox authority's write side. Every method
// other than Open acts on one open reservation.
type ReservationCommands interface {
	Open(ctx context.Context, projectionDay time.Time) (*OpenResult, error)
	UpdateSeatStatus(ctx context.Context, reservationID uuid.UUID, seatID seat.ID, wireStatus string) error
	UpdateAgeDiscount(ctx context.Context, reservationID uuid.UUID, underAge, overAge int) error
	ApplyCoupon(ctx context.Context, reservationID uuid.UUID, code string) error
	Purchase(ctx context.Context, reservationID uuid.UUID, payment PaymentDetails) error
	CheckoutInfo(ctx context.Context, reservationID uuid.UUID) (string, error)
}

type OpenResult struct {
	ReservationID uuid.UUID
	ProjectionDay time.Time
	ExpiresAt     time.Time
	Seats         []seat.ID
}

type PaymentDetails struct {
	Email      string
	Owner      string
	CardNumber string
	CVV        string
	Expiration string
}

// PurchasedEvent is the outbox payload written when a reservation is paid.
type PurchasedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Email         string    `json:"email"`
	Seats         []string  `json:"seats"`
	Total         string    `json:"total"`
	PaidAt        time.Time `json:"paid_at"`
}

const (
	JobKindPurchased  = "reservation.purchased"
	JobTopicPurchases = "purchases"
)
