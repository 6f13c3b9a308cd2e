package components

import (
	"log/slog"

	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra/memstore"
	"cinema-checkout/internal/infra/queue"
	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/usecase/queries"
	"cinema-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		NewMemStore,
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(queue.JobStore)),
		),
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

func NewMemStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*memstore.Store, error) {
	coupons, err := coupon.ParseCatalog(cfg.Sandbox.Coupons)
	if err != nil {
		return nil, err
	}
	seats := make([]seat.ID, 0, len(cfg.Sandbox.Seats))
	for _, s := range cfg.Sandbox.Seats {
		seats = append(seats, seat.ID(s))
	}
	return memstore.NewStore(seats, coupons, clk, logger), nil
}
