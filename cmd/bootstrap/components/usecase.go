package components

import (
	"fmt"
	"log/slog"
	"time"

	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/pkg/jwt"
	"cinema-checkout/internal/usecase/commands"
	"cinema-checkout/internal/usecase/queries"
	"cinema-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	func(clock clock.Clock, cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(clock, cfg.Sandbox.ReservationTTL)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			factory *reservation.Factory,
			calc reservation.PriceCalculator,
			clock clock.Clock,
			logger *slog.Logger,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(uow, factory, calc, clock, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		commands.NewTokenValidator,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(commands.TokenIssuer)),
		),
	),
)

func NewPriceCalculator(cfg config.Config) (*reservation.DefaultPriceCalculator, error) {
	days := make([]time.Time, 0, len(cfg.Sandbox.DiscountDays))
	for _, d := range cfg.Sandbox.DiscountDays {
		day, err := time.Parse(cfg.Sandbox.ProjectionLayout, d)
		if err != nil {
			return nil, fmt.Errorf("invalid SANDBOX_DISCOUNT_DAYS entry %q: %w", d, err)
		}
		days = append(days, day)
	}
	return reservation.NewDefaultPriceCalculator(cfg.Sandbox.SeatPriceCents, days), nil
}
