package main

import (
	"context"
	"log/slog"
	"os"

	"cinema-checkout/cmd/bootstrap"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	app := fx.New(
		bootstrap.CheckoutModule,
		// stdout belongs to the terminal session
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start checkout", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop checkout", "error", err)
		os.Exit(1)
	}
}
