package reservation

import (
	"errors"
	"slices"
	"time"

	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/seat"

	"github.com/google/uuid"
)

var (
	ErrSeatAlreadyHeld      = errors.New("seat already in reservation")
	ErrSeatNotHeld          = errors.New("seat not in reservation")
	ErrNegativeAgeCount     = errors.New("age count cannot be negative")
	ErrAgeCountsExceedSeats = errors.New("age counts exceed the reserved seats")
	ErrCouponAlreadyApplied = errors.New("a coupon is already applied")
	ErrNoSeats              = errors.New("reservation has no seats")
	ErrAlreadyPaid          = errors.New("reservation already paid")
	ErrExpired              = errors.New("reservation expired")
)

type Reservation struct {
	id            uuid.UUID
	seats         []seat.ID
	underAge      int
	overAge       int
	coupon        *AppliedCoupon
	projectionDay time.Time
	status        Status
	buyerEmail    string
	createdAt     time.Time
	expiresAt     time.Time
	paidAt        time.Time
}

func NewReservation(id uuid.UUID, projectionDay, createdAt, expiresAt time.Time) *Reservation {
	return &Reservation{
		id:            id,
		projectionDay: projectionDay,
		status:        StatusOpen,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
	}
}

func (r *Reservation) TakeSeat(id seat.ID) error {
	if r.IsPaid() {
		return ErrAlreadyPaid
	}
	if r.Holds(id) {
		return ErrSeatAlreadyHeld
	}
	r.seats = append(r.seats, id)
	return nil
}

// FreeSeat drops the seat. Age counts that no longer fit the remaining
// seats fall back to zero.
func (r *Reservation) FreeSeat(id seat.ID) error {
	if r.IsPaid() {
		return ErrAlreadyPaid
	}
	i := slices.Index(r.seats, id)
	if i < 0 {
		return ErrSeatNotHeld
	}
	r.seats = slices.Delete(r.seats, i, i+1)
	if r.underAge+r.overAge > len(r.seats) {
		r.underAge, r.overAge = 0, 0
	}
	return nil
}

func (r *Reservation) SetAgeCounts(underAge, overAge int) error {
	if r.IsPaid() {
		return ErrAlreadyPaid
	}
	if underAge < 0 || overAge < 0 {
		return ErrNegativeAgeCount
	}
	if underAge+overAge > len(r.seats) {
		return ErrAgeCountsExceedSeats
	}
	r.underAge, r.overAge = underAge, overAge
	return nil
}

func (r *Reservation) ApplyCoupon(c *coupon.Coupon) error {
	if r.IsPaid() {
		return ErrAlreadyPaid
	}
	if r.coupon != nil {
		return ErrCouponAlreadyApplied
	}
	r.coupon = &AppliedCoupon{Code: c.Code(), Discount: c.Discount()}
	return nil
}

func (r *Reservation) Pay(buyerEmail string, now time.Time) error {
	if r.IsPaid() {
		return ErrAlreadyPaid
	}
	if r.IsExpired(now) {
		return ErrExpired
	}
	if len(r.seats) == 0 {
		return ErrNoSeats
	}
	r.status = StatusPaid
	r.buyerEmail = buyerEmail
	r.paidAt = now
	return nil
}

// Clone returns an independent copy for staged changes.
func (r *Reservation) Clone() *Reservation {
	c := *r
	c.seats = slices.Clone(r.seats)
	if r.coupon != nil {
		applied := *r.coupon
		c.coupon = &applied
	}
	return &c
}

func (r *Reservation) Holds(id seat.ID) bool {
	return slices.Contains(r.seats, id)
}

// IsExpired reports whether an unpaid reservation outlived its hold.
func (r *Reservation) IsExpired(now time.Time) bool {
	return !r.IsPaid() && !r.expiresAt.IsZero() && now.After(r.expiresAt)
}

func (r *Reservation) IsPaid() bool {
	return r.status == StatusPaid
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) Seats() []seat.ID         { return slices.Clone(r.seats) }
func (r *Reservation) SeatCount() int           { return len(r.seats) }
func (r *Reservation) UnderAge() int            { return r.underAge }
func (r *Reservation) OverAge() int             { return r.overAge }
func (r *Reservation) Coupon() *AppliedCoupon   { return r.coupon }
func (r *Reservation) ProjectionDay() time.Time { return r.projectionDay }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) BuyerEmail() string       { return r.buyerEmail }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time     { return r.expiresAt }
func (r *Reservation) PaidAt() time.Time        { return r.paidAt }
