package eventbroker

import (
	"context"
	"training-reels/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of port.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishIngestEvent(ctx context.Context, event domain.IngestEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
