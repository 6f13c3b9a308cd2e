package queries

import (
	"context"
	"time"

	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReadFailed          = errs.New("read failed")
)

// Seat availability as seen by the requesting reservation.
const (
	SeatFree  = "free"
	SeatMine  = "mine"
	SeatTaken = "taken"
)

type SeatView struct {
	ID           string `json:"id"`
	Availability string `json:"availability"`
	// Status is the wire value the client would send to keep the seat as is.
	Status string `json:"status"`
}

type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	ProjectionDay string     `json:"projection_day"`
	Status        string     `json:"status"`
	ExpiresAt     time.Time  `json:"expires_at"`
	UnderAge      int        `json:"under_age"`
	OverAge       int        `json:"over_age"`
	CouponCode    *string    `json:"coupon_code,omitempty"`
	Seats         []SeatView `json:"seats"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	FindSeats(ctx context.Context) ([]readmodel.SeatRM, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rm, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err)
	}
	seats, err := q.repo.FindSeats(ctx)
	if err != nil {
		return nil, mapReadErr(err)
	}

	view := &ReservationView{
		ID:            rm.ID,
		ProjectionDay: rm.ProjectionDay.Format(time.DateOnly),
		Status:        rm.Status,
		ExpiresAt:     rm.ExpiresAt,
		UnderAge:      rm.UnderAge,
		OverAge:       rm.OverAge,
		CouponCode:    rm.CouponCode,
		Seats:         make([]SeatView, 0, len(seats)),
	}
	for _, s := range seats {
		view.Seats = append(view.Seats, seatView(s, id))
	}
	return view, nil
}

func seatView(s readmodel.SeatRM, viewer uuid.UUID) SeatView {
	switch s.Owner {
	case uuid.Nil:
		return SeatView{ID: s.ID, Availability: SeatFree, Status: seat.StatusAvailable.WireValue()}
	case viewer:
		return SeatView{ID: s.ID, Availability: SeatMine, Status: seat.StatusSelected.WireValue()}
	default:
		return SeatView{ID: s.ID, Availability: SeatTaken, Status: seat.StatusAvailable.WireValue()}
	}
}

func mapReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservationNotFound)
	}
	return errs.Mark(err, ErrReadFailed)
}
