package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher publishes ingest events to JetStream, one subject per status
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects and makes sure the status stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg.URL, cfg.ConsumerName+"-publisher", logger)
	if err != nil {
		return nil, err
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StatusStream,
		Subjects: []string{cfg.StatusSubject + ".>"},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StatusStream, err)
	}

	return &Publisher{conn: conn, js: js, config: cfg, logger: logger}, nil
}

// Subject returns the subject events with status are published on
func (p *Publisher) Subject(status domain.IngestStatus) string {
	return p.config.StatusSubject + "." + string(status)
}

func (p *Publisher) PublishIngestEvent(ctx context.Context, event domain.IngestEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal ingest event: %w", err)
	}

	ack, err := p.js.Publish(ctx, p.Subject(event.Status), data)
	if err != nil {
		return fmt.Errorf("failed to publish ingest event: %w", err)
	}
	p.logger.Debug("ingest event published", "record", event.RecordID, "status", event.Status, "seq", ack.Sequence)
	return nil
}

// Close drains pending publishes and closes the connection
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
