package queue

import (
	"context"
	"log/slog"
	"sync"

	"cinema-checkout/internal/infra"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends messages to one durable queue through the default
// exchange. The connection is dialed lazily and redialed after it drops.
type AMQPPublisher struct {
	url       string
	queueName string
	logger    *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewAMQPPublisher(url, queueName string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		url:       url,
		queueName: queueName,
		logger:    logger,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	conn, err := p.connection()
	if err != nil {
		return infra.WrapErr(p.logger, infra.KindUnreachable, "amqp dial failed", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		p.reset()
		return infra.WrapErr(p.logger, infra.KindUnreachable, "amqp channel open failed", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return infra.WrapErr(p.logger, infra.KindBadStatus, "amqp queue declare failed", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         msg.Kind,
		Timestamp:    msg.CreatedAt.UTC(),
		Headers:      amqp.Table{"topic": msg.Topic},
		Body:         msg.Body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queueName, false, false, pub); err != nil {
		return infra.WrapErr(p.logger, infra.KindBadStatus, "amqp publish failed", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

func (p *AMQPPublisher) connection() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, err
	}
	p.conn = conn
	return conn, nil
}

func (p *AMQPPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
