package bootstrap

import (
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Reservation tokens live as long as the hold they grant access to.
func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Sandbox.JWTSecret == "" {
		panic("SANDBOX_JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.Sandbox.JWTSecret, cfg.Sandbox.ReservationTTL)
}
