package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps the sandbox state in memory. Writes go through Within, which
// stages every change and applies it only when the callback succeeds.
type Store struct {
	mu     sync.Mutex
	clock  clock.Clock
	logger *slog.Logger

	seatOrder    []seat.ID
	owners       map[seat.ID]uuid.UUID
	reservations map[uuid.UUID]*reservation.Reservation
	coupons      map[coupon.Code]*coupon.Coupon
	jobs         []*shared.NotificationJob
}

var _ shared.UnitOfWork = (*Store)(nil)

func NewStore(seatIDs []seat.ID, coupons []*coupon.Coupon, clk clock.Clock, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		clock:        clk,
		logger:       logger,
		owners:       make(map[seat.ID]uuid.UUID, len(seatIDs)),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		coupons:      make(map[coupon.Code]*coupon.Coupon, len(coupons)),
	}
	for _, id := range seatIDs {
		if _, dup := s.owners[id]; dup {
			continue
		}
		s.seatOrder = append(s.seatOrder, id)
		s.owners[id] = uuid.Nil
	}
	for _, c := range coupons {
		s.coupons[c.Code()] = c
	}
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTx(s)
	if err := fn(ctx, t); err != nil {
		return err
	}
	t.commit()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &commandReads{store: s}
}

// PurgeExpired drops unpaid reservations past their hold and frees their
// seats.
func (s *Store) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, r := range s.reservations {
		if !r.IsExpired(now) {
			continue
		}
		for _, seatID := range r.Seats() {
			if s.owners[seatID] == id {
				s.owners[seatID] = uuid.Nil
			}
		}
		delete(s.reservations, id)
		purged++
	}
	if purged > 0 {
		s.logger.Info("purged expired reservations", slog.Int("count", purged))
	}
	return purged
}

// RunJanitor purges expired reservations every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PurgeExpired(s.clock.Now())
		}
	}
}

type commandReads struct {
	store *Store
}

func (r *commandReads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, errReservationNotFound(id)
	}
	return res.Clone(), nil
}

func (r *commandReads) SeatMap(_ context.Context) []seat.ID {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return slices.Clone(r.store.seatOrder)
}
