package port

import (
	"context"
	"training-reels/internal/core/domain"
)

// EventConsumer is an interface to define an event consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}

// EventPublisher publishes ingest state changes
type EventPublisher interface {
	PublishIngestEvent(ctx context.Context, event domain.IngestEvent) error
}
