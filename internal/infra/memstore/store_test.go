//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/infra/memstore"
	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var start = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.MockClock
	store   *memstore.Store
	factory *reservation.Factory
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(start)
	d, err := coupon.NewFixedDiscount(500)
	s.Require().NoError(err)
	c, err := coupon.NewCoupon("WELCOME2026", d)
	s.Require().NoError(err)
	s.store = memstore.NewStore([]seat.ID{"A1", "A2", "A3"}, []*coupon.Coupon{c}, s.clock, nil)
	s.factory = reservation.NewFactory(s.clock, 15*time.Minute)
}

func (s *StoreTestSuite) create() *reservation.Reservation {
	r := s.factory.CreateReservation(time.Time{})
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, r)
	})
	s.Require().NoError(err)
	return r
}

func (s *StoreTestSuite) TestCreateAndRead() {
	r := s.create()

	got, err := s.store.CommandReads().ReservationByID(s.ctx, r.ID())
	s.Require().NoError(err)
	s.Equal(r.ID(), got.ID())

	_, err = s.store.CommandReads().ReservationByID(s.ctx, uuid.New())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestCreateDuplicate() {
	r := s.create()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, r)
	})
	s.True(infra.IsKind(err, infra.KindConflict))
}

func (s *StoreTestSuite) TestSeatMapKeepsOrder() {
	s.Equal([]seat.ID{"A1", "A2", "A3"}, s.store.CommandReads().SeatMap(s.ctx))
}

func (s *StoreTestSuite) TestFailedUnitOfWorkKeepsNothing() {
	r := s.create()
	boom := errors.New("boom")

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, r.ID())
		if err != nil {
			return err
		}
		if err := res.TakeSeat("A1"); err != nil {
			return err
		}
		if err := tx.Seats().Assign(ctx, "A1", r.ID()); err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}
		if err := tx.Coupons().MarkRedeemed(ctx, "WELCOME2026"); err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, "k", "t", []byte("{}"), start); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.store.CommandReads().ReservationByID(s.ctx, r.ID())
	s.Require().NoError(err)
	s.Empty(got.Seats())

	s.NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, held := tx.Seats().Owner(ctx, "A1")
		s.False(held)
		c, err := tx.Coupons().FindByCode(ctx, "WELCOME2026")
		s.Require().NoError(err)
		s.False(c.IsUsed())
		return nil
	}))

	jobs, err := s.store.PendingJobs(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(jobs)
}

func (s *StoreTestSuite) TestSeatOwnership() {
	a := s.create()
	b := s.create()

	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Seats().Assign(ctx, "A2", a.ID())
	}))

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Seats().Assign(ctx, "A2", b.ID())
	})
	s.True(infra.IsKind(err, infra.KindConflict))

	err = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Seats().Assign(ctx, "Z9", a.ID())
	})
	s.True(infra.IsKind(err, infra.KindNotFound))

	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, held := tx.Seats().Owner(ctx, "A2")
		s.True(held)
		s.Equal(a.ID(), owner)
		return tx.Seats().Release(ctx, "A2")
	}))

	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Seats().Assign(ctx, "A2", b.ID())
	}))
}

func (s *StoreTestSuite) TestCouponRedeemedOnce() {
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().MarkRedeemed(ctx, "WELCOME2026")
	}))

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().MarkRedeemed(ctx, "WELCOME2026")
	})
	s.ErrorIs(err, coupon.ErrCouponAlreadyUsed)

	err = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Coupons().FindByCode(ctx, "NOTACOUPON")
		return err
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestPendingJobs() {
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().CreateJob(ctx, "reservation.purchased", "purchases", []byte(`{"n":1}`), start); err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, "reservation.purchased", "purchases", []byte(`{"n":2}`), start.Add(time.Minute))
	}))

	jobs, err := s.store.PendingJobs(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.JSONEq(`{"n":1}`, string(jobs[0].Payload))

	job := jobs[0]
	job.Status = shared.JobSent
	job.Attempts = 1
	s.Require().NoError(s.store.UpdateJob(s.ctx, job))

	s.clock.Add(time.Minute)
	jobs, err = s.store.PendingJobs(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.JSONEq(`{"n":2}`, string(jobs[0].Payload))

	err = s.store.UpdateJob(s.ctx, shared.NotificationJob{ID: uuid.New()})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestPurgeExpired() {
	r := s.create()
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, r.ID())
		if err != nil {
			return err
		}
		if err := res.TakeSeat("A3"); err != nil {
			return err
		}
		if err := tx.Seats().Assign(ctx, "A3", r.ID()); err != nil {
			return err
		}
		return tx.Reservations().Save(ctx, res)
	}))

	s.Equal(0, s.store.PurgeExpired(s.clock.Now()))

	s.clock.Add(16 * time.Minute)
	s.Equal(1, s.store.PurgeExpired(s.clock.Now()))

	_, err := s.store.CommandReads().ReservationByID(s.ctx, r.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
	s.NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, held := tx.Seats().Owner(ctx, "A3")
		s.False(held)
		return nil
	}))
}

func (s *StoreTestSuite) TestReadStore() {
	r := s.create()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Seats().Assign(ctx, "A2", r.ID())
	})
	s.Require().NoError(err)

	rm, err := s.store.FindByID(s.ctx, r.ID())
	s.Require().NoError(err)
	s.Equal(r.ID(), rm.ID)
	s.Equal("open", rm.Status)
	s.Nil(rm.CouponCode)

	seats, err := s.store.FindSeats(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(seats, 3)
	s.Equal(uuid.Nil, seats[0].Owner)
	s.Equal(r.ID(), seats[1].Owner)

	s.clock.Add(16 * time.Minute)
	_, err = s.store.FindByID(s.ctx, r.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func TestWithinCanceledContext(t *testing.T) {
	store := memstore.NewStore(nil, nil, clock.NewMockClock(start), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
