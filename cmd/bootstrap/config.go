package bootstrap

import (
	"cinema-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule also exposes the sections components take on their own.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.QueueConfig { return cfg.Queue },
		func(cfg config.Config) config.AuthorityConfig { return cfg.Authority },
	),
)
