package upload

import (
	"context"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) InitiateUpload(ctx context.Context, req domain.InitiateUploadRequest) (*domain.UploadSession, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadService) UploadFile(ctx context.Context, source port.ChunkSource, uploadURL string, onProgress port.ProgressFunc) error {
	args := m.Called(ctx, source, uploadURL, onProgress)
	return args.Error(0)
}

func (m *MockUploadService) CompleteUpload(ctx context.Context, sessionID string) (*domain.CompleteUploadResult, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(*domain.CompleteUploadResult), args.Error(1)
}

func (m *MockUploadService) CancelUpload(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockUploadService) ResumeUpload(ctx context.Context, sessionID string, resumeURL string) (*domain.UploadSession, error) {
	args := m.Called(ctx, sessionID, resumeURL)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadService) Upload(ctx context.Context, req domain.InitiateUploadRequest, source port.ChunkSource, onProgress port.ProgressFunc) (*domain.UploadSession, *domain.CompleteUploadResult, error) {
	args := m.Called(ctx, req, source, onProgress)
	return args.Get(0).(*domain.UploadSession), args.Get(1).(*domain.CompleteUploadResult), args.Error(2)
}

func (m *MockUploadService) PublishVideo(ctx context.Context, req domain.PublishVideoRequest) (*domain.Video, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.Video), args.Error(1)
}
