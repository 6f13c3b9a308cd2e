package request

import (
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/usecase/commands"
)

// Form bodies posted by checkout clients. reservation-id is resolved by
// middleware and is not repeated here.

type SeatStatusRequest struct {
	SeatID string `form:"seat-id" binding:"required"`
	Status string `form:"seat-status" binding:"required"`
}

func (r SeatStatusRequest) Seat() seat.ID {
	return seat.ID(r.SeatID)
}

type AgeDiscountRequest struct {
	UnderAge *int `form:"under-age" binding:"required,min=0"`
	OverAge  *int `form:"over-age" binding:"required,min=0"`
}

type CouponRequest struct {
	Code string `form:"coupon-code" binding:"required"`
}

type PurchaseRequest struct {
	Email      string `form:"email" binding:"required"`
	Owner      string `form:"card-owner" binding:"required"`
	CardNumber string `form:"card-number" binding:"required"`
	CVV        string `form:"card-cvv" binding:"required"`
	Expiration string `form:"card-expiration" binding:"required"`
}

func (r PurchaseRequest) ToPayment() commands.PaymentDetails {
	return commands.PaymentDetails{
		Email:      r.Email,
		Owner:      r.Owner,
		CardNumber: r.CardNumber,
		CVV:        r.CVV,
		Expiration: r.Expiration,
	}
}
