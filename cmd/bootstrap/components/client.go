package components

import (
	"context"
	"log/slog"
	"os"

	"cinema-checkout/internal/domain/alert"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra/authority"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/ui/terminal"
	"cinema-checkout/internal/usecase"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		func(cfg config.AuthorityConfig, logger *slog.Logger) *authority.Client {
			return authority.NewClient(cfg, nil, logger)
		},
		fx.Annotate(
			func(c *authority.Client) *authority.Client { return c },
			fx.As(new(usecase.Authority)),
		),
		NewSession,
		func() *terminal.Renderer { return terminal.NewRenderer(os.Stdout) },
		fx.Annotate(
			func(r *terminal.Renderer) *terminal.Renderer { return r },
			fx.As(new(usecase.View)),
		),
		fx.Annotate(
			func(r *terminal.Renderer) *terminal.Renderer { return r },
			fx.As(new(alert.Display)),
		),
		alert.NewPresenter,
		usecase.NewFormValidator,
		NewSyncController,
		func(ctrl *usecase.SyncController, r *terminal.Renderer, logger *slog.Logger) *terminal.Shell {
			return terminal.NewShell(ctrl, r, logger)
		},
	),
	fx.Invoke(runSession),
)

// Session is the reservation the terminal works on.
type Session struct {
	ReservationID usecase.ReservationID
	Seats         []seat.ID
}

// NewSession uses the configured reservation id or opens a new reservation
// when none is given.
func NewSession(cfg config.Config, client *authority.Client, logger *slog.Logger) (*Session, error) {
	checkoutCfg := cfg.Checkout
	seats := checkoutCfg.Seats

	if checkoutCfg.ReservationID == "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Authority.Timeout)
		defer cancel()
		opened, err := client.OpenReservation(ctx, checkoutCfg.ProjectionDay)
		if err != nil {
			return nil, err
		}
		logger.Info("reservation opened",
			slog.String("projection_day", opened.ProjectionDay),
			slog.Int("seats", len(opened.Seats)))
		checkoutCfg.ReservationID = opened.ReservationID.String()
		if len(opened.Seats) > 0 {
			seats = seats[:0:0]
			for _, id := range opened.Seats {
				seats = append(seats, string(id))
			}
			checkoutCfg.Seats = seats
		}
	}
	if err := checkoutCfg.Validate(); err != nil {
		return nil, err
	}

	ids := make([]seat.ID, 0, len(checkoutCfg.Seats))
	for _, s := range checkoutCfg.Seats {
		ids = append(ids, seat.ID(s))
	}
	return &Session{ReservationID: usecase.ReservationID(checkoutCfg.ReservationID), Seats: ids}, nil
}

func NewSyncController(
	cfg config.Config,
	session *Session,
	auth usecase.Authority,
	view usecase.View,
	alerts *alert.Presenter,
	forms *usecase.FormValidator,
	logger *slog.Logger,
) *usecase.SyncController {
	return usecase.NewSyncController(
		usecase.ControllerConfig{
			ReservationID:      session.ReservationID,
			AgeDiscountEnabled: cfg.Checkout.AgeDiscountEnabled,
		},
		auth,
		view,
		alerts,
		seat.NewStore(session.Seats...),
		forms,
		logger,
	)
}

func runSession(lc fx.Lifecycle, shutdowner fx.Shutdowner, ctrl *usecase.SyncController, shell *terminal.Shell, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := ctrl.RefreshCart(ctx); err != nil {
					logger.Warn("initial cart refresh failed", slog.String("error", err.Error()))
				}
				if err := shell.Run(ctx, os.Stdin); err != nil {
					logger.Error("terminal session ended with error", slog.String("error", err.Error()))
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("failed to request shutdown", slog.String("error", err.Error()))
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
