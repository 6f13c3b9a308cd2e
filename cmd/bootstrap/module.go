package bootstrap

import (
	"cinema-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// SandboxModule wires the reservation authority served over HTTP.
var SandboxModule = fx.Options(
	ConfigModule,
	LoggerModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)

// CheckoutModule wires the terminal checkout client.
var CheckoutModule = fx.Options(
	ConfigModule,
	ClientLoggerModule,
	components.ClientModule,
)
