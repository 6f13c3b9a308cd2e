package queue

import (
	"context"
	"log/slog"
	"time"

	"cinema-checkout/internal/pkg/clock"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/usecase/shared"
)

// JobStore is the outbox side the dispatcher drains.
type JobStore interface {
	PendingJobs(ctx context.Context, limit int) ([]shared.NotificationJob, error)
	UpdateJob(ctx context.Context, job shared.NotificationJob) error
}

// Dispatcher moves queued outbox jobs to the publisher. A job that keeps
// failing is retried with a linear backoff and marked failed after
// MaxAttempts.
type Dispatcher struct {
	store     JobStore
	publisher Publisher
	cfg       config.QueueConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func NewDispatcher(store JobStore, publisher Publisher, cfg config.QueueConfig, clock clock.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		clock:     clock,
		logger:    logger,
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil {
				d.logger.Warn("outbox dispatch failed", slog.String("error", err.Error()))
			}
		}
	}
}

// DispatchOnce publishes one batch and reports how many jobs were sent.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	jobs, err := d.store.PendingJobs(ctx, d.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		job.Attempts++
		pubErr := d.publisher.Publish(ctx, Message{
			ID:        job.ID,
			Kind:      job.Kind,
			Topic:     job.Topic,
			Body:      job.Payload,
			CreatedAt: job.CreatedAt,
		})
		switch {
		case pubErr == nil:
			job.Status = shared.JobSent
			job.LastError = ""
			sent++
		case job.Attempts >= d.cfg.MaxAttempts:
			job.Status = shared.JobFailed
			job.LastError = pubErr.Error()
			d.logger.Error("outbox job gave up",
				slog.String("job_id", job.ID.String()),
				slog.Int("attempts", job.Attempts),
				slog.String("error", pubErr.Error()))
		default:
			job.LastError = pubErr.Error()
			job.RunAt = d.clock.Now().Add(time.Duration(job.Attempts) * d.cfg.RetryDelay)
		}
		if err := d.store.UpdateJob(ctx, job); err != nil {
			return sent, err
		}
	}
	return sent, nil
}
