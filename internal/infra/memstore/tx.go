package memstore

import (
	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// tx is only used while the store lock is held.
type tx struct {
	store        *Store
	reservations map[uuid.UUID]*reservation.Reservation
	owners       map[seat.ID]uuid.UUID
	redeemed     map[coupon.Code]struct{}
	jobs         []*shared.NotificationJob
}

func newTx(s *Store) *tx {
	return &tx{
		store:        s,
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		owners:       make(map[seat.ID]uuid.UUID),
		redeemed:     make(map[coupon.Code]struct{}),
	}
}

func (t *tx) Reservations() shared.ReservationRepository   { return &reservationRepository{tx: t} }
func (t *tx) Seats() shared.SeatRepository                 { return &seatRepository{tx: t} }
func (t *tx) Coupons() shared.CouponRepository             { return &couponRepository{tx: t} }
func (t *tx) Notifications() shared.NotificationRepository { return &notificationRepository{tx: t} }

func (t *tx) commit() {
	s := t.store
	for id, r := range t.reservations {
		s.reservations[id] = r
	}
	for id, owner := range t.owners {
		s.owners[id] = owner
	}
	for code := range t.redeemed {
		if c, ok := s.coupons[code]; ok {
			_ = c.Redeem()
		}
	}
	s.jobs = append(s.jobs, t.jobs...)
}
