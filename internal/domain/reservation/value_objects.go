package reservation

import (
	"cinema-checkout/internal/domain/cart"
	"cinema-checkout/internal/domain/coupon"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub never goes below zero.
func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns pct percent of m, rounded down to the cent.
func (m Money) Percent(pct int64) Money {
	return Money{cents: m.cents * pct / 100}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Amount() cart.Amount {
	return cart.AmountFromCents(m.cents)
}

// AppliedCoupon is the snapshot of the coupon redeemed by a reservation.
type AppliedCoupon struct {
	Code     coupon.Code
	Discount coupon.Discount
}
