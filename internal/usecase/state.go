package usecase

import (
	"cinema-checkout/internal/domain/cart"
	"cinema-checkout/internal/domain/checkout"
	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
)

type SeatView struct {
	ID     seat.ID
	Status seat.Status
}

type SelectionState struct {
	Seats         []SeatView
	SelectedCount int
	Visibility    checkout.Visibility
	AgeInput      discount.Input
	AgeValidity   discount.Validity
}

// CartState is overwritten as a whole on every refresh. CouponRowVisible
// only ever goes from false to true.
type CartState struct {
	Summary          cart.Summary
	Loaded           bool
	CouponRowVisible bool
}

type FormState struct {
	// Validated turns on inline feedback after the first submit attempt.
	Validated bool
	// Locked disables the form controls for the rest of the session.
	Locked bool
}

type ViewState struct {
	Selection   SelectionState
	Cart        CartState
	CouponForm  FormState
	PaymentForm FormState
	Purchased   bool
}
