package bootstrap

import (
	"log/slog"
	"os"

	"cinema-checkout/internal/handler/middleware"
	"cinema-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// ClientLoggerModule keeps stdout for the terminal session.
var ClientLoggerModule = fx.Module("logger",
	fx.Provide(
		NewClientLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

func NewClientLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLoggerTo(cfg.Log, os.Stderr).GetSlogLogger()
}
