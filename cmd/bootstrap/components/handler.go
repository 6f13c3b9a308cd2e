package components

import (
	"cinema-checkout/internal/handler"
	"cinema-checkout/internal/handler/api"
	"cinema-checkout/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewCheckoutHandler,
		middleware.NewReservationMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
