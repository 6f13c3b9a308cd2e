package usecase

import (
	"context"

	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
)

// ReservationID is the capability token handed over by the hosting page.
// It is never inspected, only forwarded.
type ReservationID string

func (id ReservationID) String() string {
	return string(id)
}

// Reply is the raw body returned by the authority.
type Reply string

const replyOK = "ok"

// OK reports the shared success convention of every endpoint: the body is
// exactly "ok".
func (r Reply) OK() bool {
	return string(r) == replyOK
}

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

// Authority is the remote owner of seats, prices and payments. A non-nil
// error always means the request could not be completed; a rejection is a
// Reply that is not OK.
type Authority interface {
	UpdateSeatStatus(ctx context.Context, id ReservationID, seatID seat.ID, status seat.Status) (Reply, error)
	UpdateAgeDiscount(ctx context.Context, id ReservationID, in discount.Input) (Reply, error)
	ApplyCoupon(ctx context.Context, id ReservationID, form CouponForm) (Reply, error)
	Purchase(ctx context.Context, id ReservationID, form PaymentForm) (Reply, error)
	CheckoutInfo(ctx context.Context, id ReservationID) (Reply, error)
}

// View receives state snapshots. RenderCart is only ever called from a
// cart refresh completion.
type View interface {
	RenderSelection(state SelectionState)
	RenderCart(state CartState)
	RenderForms(coupon, payment FormState)
}
