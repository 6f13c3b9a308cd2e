package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Message is one outbox job on its way to the broker.
type Message struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Body      []byte
	CreatedAt time.Time
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// LogPublisher writes messages to the log. It stands in for the broker when
// none is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, msg Message) error {
	p.logger.Info("event published",
		slog.String("message_id", msg.ID.String()),
		slog.String("kind", msg.Kind),
		slog.String("topic", msg.Topic),
		slog.String("body", string(msg.Body)))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
