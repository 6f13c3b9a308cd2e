package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cinema-checkout/internal/domain/cart"
	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationExpired      = errs.New("reservation expired")
	ErrReservationPaid         = errs.New("reservation already paid")
	ErrSeatNotFound            = errs.New("seat not found")
	ErrSeatTaken               = errs.New("seat taken by another reservation")
	ErrInvalidSeatStatus       = errs.New("invalid seat status")
	ErrInvalidAgeCounts        = errs.New("invalid age discount counts")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrCouponUsed              = errs.New("coupon already used")
	ErrCouponAlreadyApplied    = errs.New("coupon already applied")
	ErrInvalidCoupon           = errs.New("invalid coupon")
	ErrEmptyReservation        = errs.New("reservation has no seats")
	ErrPaymentRejected         = errs.New("payment rejected")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	factory    *reservation.Factory
	calculator reservation.PriceCalculator
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	calculator reservation.PriceCalculator,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		factory:    factory,
		calculator: calculator,
		clock:      clock,
		logger:     logger,
	}
}

func (r *reservationCommandsImpl) Open(ctx context.Context, projectionDay time.Time) (*OpenResult, error) {
	res := r.factory.CreateReservation(projectionDay)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.logger.Info("reservation opened",
		slog.String("reservation_id", res.ID().String()),
		slog.String("projection_day", res.ProjectionDay().Format(time.DateOnly)))

	return &OpenResult{
		ReservationID: res.ID(),
		ProjectionDay: res.ProjectionDay(),
		ExpiresAt:     res.ExpiresAt(),
		Seats:         r.uow.CommandReads().SeatMap(ctx),
	}, nil
}

func (r *reservationCommandsImpl) UpdateSeatStatus(ctx context.Context, reservationID uuid.UUID, seatID seat.ID, wireStatus string) error {
	status, err := seat.ParseWireStatus(wireStatus)
	if err != nil {
		return errs.Mark(err, ErrInvalidSeatStatus)
	}

	return r.withOpenReservation(ctx, reservationID, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
		if !tx.Seats().Exists(ctx, seatID) {
			return ErrSeatNotFound
		}
		owner, held := tx.Seats().Owner(ctx, seatID)
		if held && owner != reservationID {
			return ErrSeatTaken
		}

		// Repeating the current status is accepted as is.
		switch {
		case status == seat.StatusSelected && !res.Holds(seatID):
			if err := res.TakeSeat(seatID); err != nil {
				return mapDomainErr(err)
			}
			if err := tx.Seats().Assign(ctx, seatID, reservationID); err != nil {
				return mapRepoErr(err)
			}
		case status == seat.StatusAvailable && res.Holds(seatID):
			if err := res.FreeSeat(seatID); err != nil {
				return mapDomainErr(err)
			}
			if err := tx.Seats().Release(ctx, seatID); err != nil {
				return mapRepoErr(err)
			}
		default:
			return nil
		}
		return mapRepoErr(tx.Reservations().Save(ctx, res))
	})
}

func (r *reservationCommandsImpl) UpdateAgeDiscount(ctx context.Context, reservationID uuid.UUID, underAge, overAge int) error {
	return r.withOpenReservation(ctx, reservationID, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
		if err := res.SetAgeCounts(underAge, overAge); err != nil {
			return mapDomainErr(err)
		}
		return mapRepoErr(tx.Reservations().Save(ctx, res))
	})
}

func (r *reservationCommandsImpl) ApplyCoupon(ctx context.Context, reservationID uuid.UUID, code string) error {
	couponCode, err := coupon.NewCouponCode(code)
	if err != nil {
		return errs.Mark(err, ErrInvalidCoupon)
	}

	return r.withOpenReservation(ctx, reservationID, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
		c, err := tx.Coupons().FindByCode(ctx, couponCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if c.IsUsed() {
			return ErrCouponUsed
		}
		if err := res.ApplyCoupon(c); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Coupons().MarkRedeemed(ctx, couponCode); err != nil {
			if errs.Is(err, coupon.ErrCouponAlreadyUsed) {
				return ErrCouponUsed
			}
			return mapRepoErr(err)
		}
		return mapRepoErr(tx.Reservations().Save(ctx, res))
	})
}

func (r *reservationCommandsImpl) Purchase(ctx context.Context, reservationID uuid.UUID, payment PaymentDetails) error {
	now := r.clock.Now()
	if err := payment.Validate(now); err != nil {
		return errs.Mark(err, ErrPaymentRejected)
	}

	err := r.withOpenReservation(ctx, reservationID, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
		if err := res.Pay(payment.Email, now); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return mapRepoErr(err)
		}
		return r.createPurchasedJob(ctx, tx, res)
	})
	if err != nil {
		return err
	}

	r.logger.Info("reservation purchased", slog.String("reservation_id", reservationID.String()))
	return nil
}

func (r *reservationCommandsImpl) CheckoutInfo(ctx context.Context, reservationID uuid.UUID) (string, error) {
	res, err := r.load(ctx, reservationID)
	if err != nil {
		return "", err
	}
	return cart.Format(r.calculator.Quote(res).Summary()), nil
}

func (r *reservationCommandsImpl) load(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if res.IsExpired(r.clock.Now()) {
		return nil, ErrReservationExpired
	}
	return res, nil
}

// withOpenReservation runs fn on a copy of an unexpired, unpaid reservation.
// fn is responsible for saving it.
func (r *reservationCommandsImpl) withOpenReservation(
	ctx context.Context,
	reservationID uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error,
) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return mapRepoErr(err)
		}
		if res.IsExpired(r.clock.Now()) {
			return ErrReservationExpired
		}
		if res.IsPaid() {
			return ErrReservationPaid
		}
		return fn(ctx, tx, res)
	})
}

func (r *reservationCommandsImpl) createPurchasedJob(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	seats := make([]string, 0, res.SeatCount())
	for _, id := range res.Seats() {
		seats = append(seats, id.String())
	}
	payload, err := json.Marshal(PurchasedEvent{
		ReservationID: res.ID(),
		Email:         res.BuyerEmail(),
		Seats:         seats,
		Total:         r.calculator.Quote(res).Total.Amount().String(),
		PaidAt:        res.PaidAt(),
	})
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, JobKindPurchased, JobTopicPurchases, payload, res.PaidAt()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func mapDomainErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrAlreadyPaid):
		return ErrReservationPaid
	case errs.Is(err, reservation.ErrExpired):
		return ErrReservationExpired
	case errs.Is(err, reservation.ErrNegativeAgeCount), errs.Is(err, reservation.ErrAgeCountsExceedSeats):
		return errs.Mark(err, ErrInvalidAgeCounts)
	case errs.Is(err, reservation.ErrCouponAlreadyApplied):
		return ErrCouponAlreadyApplied
	case errs.Is(err, reservation.ErrNoSeats):
		return ErrEmptyReservation
	default:
		return err
	}
}

func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrSeatTaken)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
