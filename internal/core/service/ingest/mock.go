package ingest

import (
	"context"
	"time"
	"training-reels/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockIngestService is a mock implementation of IngestService
type MockIngestService struct {
	mock.Mock
}

// NewMockIngestService creates a new MockIngestService
func NewMockIngestService() *MockIngestService {
	return &MockIngestService{}
}

func (m *MockIngestService) HandleMessage(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockIngestService) Ingest(ctx context.Context, objectKey string) (*domain.IngestRecord, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(*domain.IngestRecord), args.Error(1)
}

func (m *MockIngestService) Get(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.IngestRecord), args.Error(1)
}

func (m *MockIngestService) List(ctx context.Context, status *domain.IngestStatus, limit int) ([]domain.IngestRecord, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]domain.IngestRecord), args.Error(1)
}

func (m *MockIngestService) RetryJob(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.IngestRecord), args.Error(1)
}

func (m *MockIngestService) CancelJob(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngestService) ReconcileStale(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

func (m *MockIngestService) ResumeProcessing(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

func (m *MockIngestService) Close() error {
	args := m.Called()
	return args.Error(0)
}
