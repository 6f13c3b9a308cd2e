package reservation

import (
	"time"

	"cinema-checkout/internal/domain/cart"
)

const (
	ageDiscountPct    = 15
	numberDiscountPct = 15
	dayDiscountPct    = 10
	groupSize         = 10
	dayLayout         = "2006-01-02"
)

// Quote is the priced state of a reservation.
type Quote struct {
	Seats          int
	FullPrice      Money
	Discount       cart.DiscountKind
	DiscountAmount Money
	Coupon         string
	CouponDiscount Money
	Total          Money
}

func (q Quote) Summary() cart.Summary {
	return cart.Summary{
		Outcome:        cart.OutcomeOK,
		Seats:          q.Seats,
		FullPrice:      q.FullPrice.Amount(),
		Discount:       q.Discount,
		DiscountAmount: q.DiscountAmount.Amount(),
		Coupon:         q.Coupon,
		CouponDiscount: q.CouponDiscount.Amount(),
		Total:          q.Total.Amount(),
	}
}

type PriceCalculator interface {
	Quote(r *Reservation) Quote
}

// DefaultPriceCalculator applies the single best reservation discount and
// then the coupon.
type DefaultPriceCalculator struct {
	SeatPriceCents int64
	discountDays   map[string]struct{}
}

func NewDefaultPriceCalculator(seatPriceCents int64, discountDays []time.Time) *DefaultPriceCalculator {
	days := make(map[string]struct{}, len(discountDays))
	for _, d := range discountDays {
		days[d.Format(dayLayout)] = struct{}{}
	}
	return &DefaultPriceCalculator{
		SeatPriceCents: seatPriceCents,
		discountDays:   days,
	}
}

func (pc *DefaultPriceCalculator) IsDiscountDay(day time.Time) bool {
	_, ok := pc.discountDays[day.Format(dayLayout)]
	return ok
}

func (pc *DefaultPriceCalculator) Quote(r *Reservation) Quote {
	seatPrice := NewMoney(pc.SeatPriceCents)
	n := r.SeatCount()
	full := seatPrice.Times(n)

	kind, discount := pc.bestDiscount(r, seatPrice, full)
	afterDiscount := full.Sub(discount)

	q := Quote{
		Seats:          n,
		FullPrice:      full,
		Discount:       kind,
		DiscountAmount: discount,
		Coupon:         cart.NoCoupon,
		Total:          afterDiscount,
	}
	if c := r.Coupon(); c != nil {
		q.Coupon = c.Code.String()
		q.CouponDiscount = NewMoney(c.Discount.CalculateDiscountAmount(afterDiscount.Cents()))
		q.Total = afterDiscount.Sub(q.CouponDiscount)
	}
	return q
}

// bestDiscount picks the largest candidate. Candidates are listed in
// priority order so that ties keep the earlier kind.
func (pc *DefaultPriceCalculator) bestDiscount(r *Reservation, seatPrice, full Money) (cart.DiscountKind, Money) {
	n := r.SeatCount()
	ageSpectators := min(r.UnderAge()+r.OverAge(), n)

	candidates := []struct {
		kind   cart.DiscountKind
		amount Money
	}{
		{cart.DiscountAge, seatPrice.Percent(ageDiscountPct).Times(ageSpectators)},
		{cart.DiscountNumber, groupDiscount(full, n)},
		{cart.DiscountDay, pc.dayDiscount(full, r.ProjectionDay())},
	}

	kind, best := cart.DiscountNone, NewMoney(0)
	for _, c := range candidates {
		if c.amount.Cents() > best.Cents() {
			kind, best = c.kind, c.amount
		}
	}
	return kind, best
}

func groupDiscount(full Money, seats int) Money {
	if seats < groupSize {
		return NewMoney(0)
	}
	return full.Percent(numberDiscountPct)
}

func (pc *DefaultPriceCalculator) dayDiscount(full Money, day time.Time) Money {
	if !pc.IsDiscountDay(day) {
		return NewMoney(0)
	}
	return full.Percent(dayDiscountPct)
}
