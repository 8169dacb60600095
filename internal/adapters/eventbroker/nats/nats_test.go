package nats_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	nats2 "training-reels/internal/adapters/eventbroker/nats"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockHandler struct {
	messages [][]byte
	received chan struct{}
	err      error
	// failures makes the first deliveries fail with err, zero means every delivery
	failures int
	mu       sync.Mutex
}

func (m *mockHandler) HandleMessage(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.messages = append(m.messages, data)
	delivery := len(m.messages)
	m.mu.Unlock()

	if m.received != nil {
		m.received <- struct{}{}
	}
	if m.failures > 0 && delivery > m.failures {
		return nil
	}
	return m.err
}

func (m *mockHandler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func createdEvent(t *testing.T, key string) []byte {
	var event domain.MinIOEvent
	event.EventName = "s3:ObjectCreated:Put"
	event.Key = "uploads/" + key
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func setupStream(t *testing.T, js nats.JetStreamContext, streamName, subject string) {
	_, err := js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{subject},
	})
	require.NoError(t, err)
}

func TestConsumer_Subscribe(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	streamName := "uploads"
	subject := "minio.uploads"
	consumerName := "ingest"

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	js, err := nc.JetStream()
	require.NoError(t, err)

	setupStream(t, js, streamName, subject)

	handler := &mockHandler{
		received: make(chan struct{}, 1),
	}

	cfg := config.NATSConfig{
		URL:          natsURL,
		StreamName:   streamName,
		Subject:      subject,
		ConsumerName: consumerName,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgData := createdEvent(t, "line-1/setup.mp4")

	// Act
	err = consumer.Subscribe(ctx, handler)
	require.NoError(t, err)

	_, err = js.Publish(subject, msgData)
	require.NoError(t, err)

	select {
	case <-handler.received:
	case <-time.After(3 * time.Second):
		t.Fatal("message not received")
	}

	// Assert
	require.Len(t, handler.messages, 1)
	assert.Equal(t, msgData, handler.messages[0])
}

func TestConsumer_Subscribe_HandlerError(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	streamName := "error-stream"
	subject := "error.subject"
	consumerName := "error-consumer"

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	js, err := nc.JetStream()
	require.NoError(t, err)

	setupStream(t, js, streamName, subject)

	handler := &mockHandler{
		received: make(chan struct{}, 5),
		err:      assert.AnError,
	}

	cfg := config.NATSConfig{
		URL:            natsURL,
		StreamName:     streamName,
		Subject:        subject,
		ConsumerName:   consumerName,
		RedeliverDelay: 100 * time.Millisecond,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Act
	err = consumer.Subscribe(ctx, handler)
	require.NoError(t, err)

	_, err = js.Publish(subject, createdEvent(t, "line-2/press.mp4"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-handler.received:
		case <-time.After(3 * time.Second):
			t.Fatal("expected redelivery")
		}
	}

	// Assert - verify the message was redelivered due to handler error
	assert.GreaterOrEqual(t, len(handler.messages), 2)
}

func TestConsumer_RetryLogic(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	nc, _ := nats.Connect(natsURL)
	defer nc.Close()
	js, _ := nc.JetStream()
	setupStream(t, js, "retry-stream", "retry.key")

	handler := &mockHandler{
		received: make(chan struct{}, 5),
		err:      fmt.Errorf("ledger unavailable"),
		failures: 2,
	}
	cfg := config.NATSConfig{
		URL:            natsURL,
		StreamName:     "retry-stream",
		Subject:        "retry.key",
		ConsumerName:   "retry-worker",
		RedeliverDelay: 100 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	// Act
	err = consumer.Subscribe(context.Background(), handler)
	require.NoError(t, err)
	_, err = js.Publish("retry.key", createdEvent(t, "line-4/drill.mp4"))
	require.NoError(t, err)

	// Assert
	for i := 0; i < 3; i++ {
		select {
		case <-handler.received:
		case <-time.After(3 * time.Second):
			t.Fatalf("Retry %d not received", i)
		}
	}
	select {
	case <-handler.received:
		t.Fatal("acked message was redelivered")
	case <-time.After(time.Second):
	}
	assert.Equal(t, 3, handler.count())
}

func TestConsumer_TermsMalformedEvent(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	nc, _ := nats.Connect(natsURL)
	defer nc.Close()
	js, _ := nc.JetStream()
	setupStream(t, js, "term-stream", "term.key")

	handler := &mockHandler{
		received: make(chan struct{}, 5),
		err:      fmt.Errorf("%w: no records", domain.ErrMalformedEvent),
	}
	cfg := config.NATSConfig{
		URL:            natsURL,
		StreamName:     "term-stream",
		Subject:        "term.key",
		ConsumerName:   "term-worker",
		RedeliverDelay: 100 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	// Act
	err = consumer.Subscribe(context.Background(), handler)
	require.NoError(t, err)
	_, err = js.Publish("term.key", []byte(`{"Records":[]}`))
	require.NoError(t, err)

	// Assert
	select {
	case <-handler.received:
	case <-time.After(3 * time.Second):
		t.Fatal("message not received")
	}
	select {
	case <-handler.received:
		t.Fatal("malformed event was redelivered")
	case <-time.After(time.Second):
	}
	assert.Equal(t, 1, handler.count())
}

func TestConsumer_GivesUpAfterMaxDeliver(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	nc, _ := nats.Connect(natsURL)
	defer nc.Close()
	js, _ := nc.JetStream()
	setupStream(t, js, "giveup-stream", "giveup.key")

	handler := &mockHandler{
		received: make(chan struct{}, 5),
		err:      fmt.Errorf("minio unreachable"),
	}
	cfg := config.NATSConfig{
		URL:            natsURL,
		StreamName:     "giveup-stream",
		Subject:        "giveup.key",
		ConsumerName:   "giveup-worker",
		MaxDeliver:     2,
		RedeliverDelay: 100 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	// Act
	err = consumer.Subscribe(context.Background(), handler)
	require.NoError(t, err)
	_, err = js.Publish("giveup.key", createdEvent(t, "line-5/saw.mp4"))
	require.NoError(t, err)

	// Assert
	for i := 0; i < 2; i++ {
		select {
		case <-handler.received:
		case <-time.After(3 * time.Second):
			t.Fatalf("delivery %d not received", i)
		}
	}
	select {
	case <-handler.received:
		t.Fatal("message delivered past MaxDeliver")
	case <-time.After(time.Second):
	}
	assert.Equal(t, 2, handler.count())
}

func TestConsumer_GracefulShutdown(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	nc, _ := nats.Connect(natsURL)
	js, _ := nc.JetStream()
	setupStream(t, js, "shutdown-stream", "shutdown.key")

	handler := &mockHandler{received: make(chan struct{}, 1)}
	cfg := config.NATSConfig{URL: natsURL, StreamName: "shutdown-stream", Subject: "shutdown.key", ConsumerName: "shutdown-worker"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, _ := nats2.NewNATSConsumer(cfg, logger)

	// Act
	consumer.Subscribe(context.Background(), handler)
	consumer.Close()
	nc.Publish("shutdown.key", []byte("late-data"))

	// Assert
	select {
	case <-handler.received:
		t.Fatal("Message should not have been processed after Close")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestPublisher_PublishIngestEvent(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	cfg := config.NATSConfig{
		URL:           natsURL,
		ConsumerName:  "ingest",
		StatusSubject: "reels.ingest.status",
		StatusStream:  "INGEST_STATUS",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close()

	sub, err := nc.SubscribeSync("reels.ingest.status.>")
	require.NoError(t, err)

	event := domain.IngestEvent{
		RecordID:  uuid.New(),
		ObjectKey: "line-1/setup.mp4",
		Status:    domain.IngestStatusCompleted,
		Progress:  100,
		JobID:     "j1",
		At:        time.Now().UTC().Truncate(time.Millisecond),
	}

	// Act
	err = publisher.PublishIngestEvent(ctx, event)
	require.NoError(t, err)

	msg, err := sub.NextMsg(3 * time.Second)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "reels.ingest.status.completed", msg.Subject)
	var received domain.IngestEvent
	require.NoError(t, json.Unmarshal(msg.Data, &received))
	assert.Equal(t, event.RecordID, received.RecordID)
	assert.Equal(t, event.Status, received.Status)
	assert.True(t, event.At.Equal(received.At))

	js, err := nc.JetStream()
	require.NoError(t, err)
	info, err := js.StreamInfo("INGEST_STATUS")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}
