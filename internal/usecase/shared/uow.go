package shared

import (
	"context"
	"time"

	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/domain/seat"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: all-or-nothing write; nothing staged by fn is kept when it fails
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: consistent reads outside a write
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Seats() SeatRepository
	Coupons() CouponRepository
	Notifications() NotificationRepository
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	SeatMap(ctx context.Context) []seat.ID
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// FindByID returns a copy; changes are kept only through Save.
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Save(ctx context.Context, res *reservation.Reservation) error
}

type SeatRepository interface {
	Exists(ctx context.Context, id seat.ID) bool
	Owner(ctx context.Context, id seat.ID) (uuid.UUID, bool)
	Assign(ctx context.Context, id seat.ID, owner uuid.UUID) error
	Release(ctx context.Context, id seat.ID) error
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	MarkRedeemed(ctx context.Context, code coupon.Code) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
