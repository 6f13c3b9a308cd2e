package components

import (
	"context"
	"log/slog"
	"sync"

	"cinema-checkout/internal/infra/memstore"
	"cinema-checkout/internal/infra/queue"
	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPublisher,
		queue.NewDispatcher,
	),
	fx.Invoke(startWorkers),
)

// NewPublisher falls back to logging events when no broker is configured.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) queue.Publisher {
	var pub queue.Publisher
	if cfg.Queue.AMQPURL == "" {
		logger.Info("no AMQP broker configured, purchase events are logged only")
		pub = queue.NewLogPublisher(logger)
	} else {
		pub = queue.NewAMQPPublisher(cfg.Queue.AMQPURL, cfg.Queue.QueueName, logger)
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func startWorkers(lc fx.Lifecycle, cfg config.Config, store *memstore.Store, dispatcher *queue.Dispatcher, clk clock.Clock, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				dispatcher.Run(ctx)
			}()
			go func() {
				defer wg.Done()
				store.RunJanitor(ctx, cfg.Sandbox.JanitorInterval)
			}()
			logger.Info("workers started",
				slog.Duration("poll_interval", cfg.Queue.PollInterval),
				slog.Duration("janitor_interval", cfg.Sandbox.JanitorInterval),
				slog.Time("now", clk.Now()))
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}
