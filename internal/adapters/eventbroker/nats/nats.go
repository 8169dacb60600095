package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	defaultMaxDeliver     = 5
	defaultAckWait        = 30 * time.Second
	defaultRedeliverDelay = 2 * time.Second
	closeTimeout          = 5 * time.Second
)

// Consumer feeds bucket notifications from a JetStream stream to a MessageService.
// Messages are acked when handled, terminated when they can never be handled and
// redelivered with a growing delay otherwise.
type Consumer struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig

	consumeCtx jetstream.ConsumeContext
}

// NewNATSConsumer creates a new consumer
func NewNATSConsumer(cfg config.NATSConfig, logger *slog.Logger) (*Consumer, error) {
	conn, js, err := connect(cfg.URL, cfg.ConsumerName, logger)
	if err != nil {
		return nil, err
	}
	if cfg.MaxDeliver <= 0 {
		cfg.MaxDeliver = defaultMaxDeliver
	}
	if cfg.AckWait <= 0 {
		cfg.AckWait = defaultAckWait
	}
	if cfg.RedeliverDelay <= 0 {
		cfg.RedeliverDelay = defaultRedeliverDelay
	}

	return &Consumer{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger.With("stream", cfg.StreamName, "consumer", cfg.ConsumerName),
	}, nil
}

func connect(url, name string, logger *slog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}
	return conn, js, nil
}

// Subscribe binds the durable consumer and hands every message to handler until ctx ends or Close
func (n *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	cons, err := n.js.CreateOrUpdateConsumer(ctx, n.config.StreamName, jetstream.ConsumerConfig{
		Durable:       n.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: n.config.Subject,
		AckWait:       n.config.AckWait,
		DeliverGroup:  n.config.DeliverGroup,
		MaxDeliver:    n.config.MaxDeliver,
	})
	if err != nil {
		return fmt.Errorf("failed to bind consumer: %w", err)
	}

	consumeCtx, err := cons.Consume(func(msg jetstream.Msg) {
		n.handle(ctx, handler, msg)
	}, jetstream.ConsumeErrHandler(func(_ jetstream.ConsumeContext, err error) {
		n.logger.Warn("NATS consume error", "error", err)
	}))
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	n.consumeCtx = consumeCtx

	go func() {
		select {
		case <-ctx.Done():
			consumeCtx.Stop()
		case <-consumeCtx.Closed():
		}
	}()

	n.logger.Info("NATS subscription started", "subject", n.config.Subject)
	return nil
}

func (n *Consumer) handle(ctx context.Context, handler port.MessageService, msg jetstream.Msg) {
	attempt := 1
	if meta, err := msg.Metadata(); err == nil {
		attempt = int(meta.NumDelivered)
	}
	logger := n.logger.With("subject", msg.Subject(), "attempt", attempt)

	if ctx.Err() != nil {
		if err := msg.Nak(); err != nil {
			logger.Error("failed to nak message", "error", err)
		}
		return
	}

	handleErr := handler.HandleMessage(ctx, msg.Data())
	switch {
	case handleErr == nil:
		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack message", "error", err)
		}
	case errors.Is(handleErr, domain.ErrMalformedEvent):
		logger.Warn("dropping malformed event", "error", handleErr)
		if err := msg.Term(); err != nil {
			logger.Error("failed to term message", "error", err)
		}
	case attempt >= n.config.MaxDeliver:
		logger.Error("giving up on event", "error", handleErr)
		if err := msg.Term(); err != nil {
			logger.Error("failed to term message", "error", err)
		}
	default:
		delay := n.config.RedeliverDelay * time.Duration(attempt)
		logger.Warn("failed to handle message, redelivering", "delay", delay, "error", handleErr)
		if err := msg.NakWithDelay(delay); err != nil {
			logger.Error("failed to nak message", "error", err)
		}
	}
}

// Close stops consuming, waits for the message being handled and disconnects
func (n *Consumer) Close() error {
	if n.consumeCtx != nil {
		n.consumeCtx.Stop()
		select {
		case <-n.consumeCtx.Closed():
		case <-time.After(closeTimeout):
			n.logger.Warn("NATS subscription did not close in time")
		}
	}

	if n.conn != nil {
		n.conn.Close()
	}
	return nil
}
