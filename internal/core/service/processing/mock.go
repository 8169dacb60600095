package processing

import (
	"context"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockProcessingService is a mock implementation of ProcessingService
type MockProcessingService struct {
	mock.Mock
}

// NewMockProcessingService creates a new MockProcessingService
func NewMockProcessingService() *MockProcessingService {
	return &MockProcessingService{}
}

func (m *MockProcessingService) GetStatus(ctx context.Context, jobID string) (*domain.ProcessingStatus, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(*domain.ProcessingStatus), args.Error(1)
}

func (m *MockProcessingService) PollStatus(ctx context.Context, jobID string, onStatus port.StatusFunc, maxAttempts int) (*domain.ProcessingStatus, error) {
	args := m.Called(ctx, jobID, onStatus, maxAttempts)
	return args.Get(0).(*domain.ProcessingStatus), args.Error(1)
}

func (m *MockProcessingService) RetryJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockProcessingService) CancelJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}
