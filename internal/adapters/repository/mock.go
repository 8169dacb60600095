package repository

import (
	"context"
	"time"
	"training-reels/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockIngestRepository struct {
	mock.Mock
}

func NewMockIngestRepository() *MockIngestRepository {
	return &MockIngestRepository{}
}

func (m *MockIngestRepository) Create(ctx context.Context, record domain.IngestRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockIngestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.IngestRecord), args.Error(1)
}

func (m *MockIngestRepository) FindByObjectKey(ctx context.Context, objectKey string) (*domain.IngestRecord, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(*domain.IngestRecord), args.Error(1)
}

func (m *MockIngestRepository) List(ctx context.Context, status *domain.IngestStatus, limit int) ([]domain.IngestRecord, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]domain.IngestRecord), args.Error(1)
}

func (m *MockIngestRepository) UpdateSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	args := m.Called(ctx, id, sessionID)
	return args.Error(0)
}

func (m *MockIngestRepository) UpdateProgress(ctx context.Context, id uuid.UUID, progress float64) error {
	args := m.Called(ctx, id, progress)
	return args.Error(0)
}

func (m *MockIngestRepository) UpdateJob(ctx context.Context, id uuid.UUID, videoID, jobID string) error {
	args := m.Called(ctx, id, videoID, jobID)
	return args.Error(0)
}

func (m *MockIngestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IngestStatus, errMsg string) error {
	args := m.Called(ctx, id, status, errMsg)
	return args.Error(0)
}

func (m *MockIngestRepository) FindStale(ctx context.Context, status domain.IngestStatus, before time.Time) ([]domain.IngestRecord, error) {
	args := m.Called(ctx, status, before)
	return args.Get(0).([]domain.IngestRecord), args.Error(1)
}
