package memstore

import (
	"context"

	"cinema-checkout/internal/usecase/queries"
	"cinema-checkout/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var _ queries.ReservationViewRepo = (*Store)(nil)

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok || r.IsExpired(s.clock.Now()) {
		return nil, errReservationNotFound(id)
	}
	rm := &readmodel.ReservationRM{
		ID:            r.ID(),
		ProjectionDay: r.ProjectionDay(),
		Status:        r.Status().String(),
		ExpiresAt:     r.ExpiresAt(),
		UnderAge:      r.UnderAge(),
		OverAge:       r.OverAge(),
	}
	if c := r.Coupon(); c != nil {
		code := c.Code.String()
		rm.CouponCode = &code
	}
	return rm, nil
}

func (s *Store) FindSeats(ctx context.Context) ([]readmodel.SeatRM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seats := make([]readmodel.SeatRM, 0, len(s.seatOrder))
	for _, id := range s.seatOrder {
		seats = append(seats, readmodel.SeatRM{ID: id.String(), Owner: s.owners[id]})
	}
	return seats, nil
}
