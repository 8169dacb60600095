package restapi

import (
	"context"
	"training-reels/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock of every REST API port
type MockAPI struct {
	mock.Mock
}

// NewMockAPI creates a new MockAPI
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

func (m *MockAPI) InitiateUpload(ctx context.Context, req domain.InitiateUploadRequest) (*domain.UploadSession, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockAPI) UploadChunk(ctx context.Context, uploadURL string, chunk domain.Chunk) error {
	args := m.Called(ctx, uploadURL, chunk)
	return args.Error(0)
}

func (m *MockAPI) CompleteUpload(ctx context.Context, sessionID string) (*domain.CompleteUploadResult, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(*domain.CompleteUploadResult), args.Error(1)
}

func (m *MockAPI) CancelUpload(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAPI) ResumeUpload(ctx context.Context, sessionID string, resumeURL string) (*domain.UploadSession, error) {
	args := m.Called(ctx, sessionID, resumeURL)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockAPI) PublishVideo(ctx context.Context, req domain.PublishVideoRequest) (*domain.Video, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockAPI) GetProcessingStatus(ctx context.Context, jobID string) (*domain.ProcessingStatus, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(*domain.ProcessingStatus), args.Error(1)
}

func (m *MockAPI) RetryJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockAPI) CancelJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockAPI) SearchVideos(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.SearchResponse), args.Error(1)
}

func (m *MockAPI) Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockAPI) Facets(ctx context.Context) ([]domain.Facet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Facet), args.Error(1)
}

func (m *MockAPI) TrackAnalytics(ctx context.Context, event domain.SearchAnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAPI) History(ctx context.Context) ([]domain.SearchHistoryEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SearchHistoryEntry), args.Error(1)
}

func (m *MockAPI) DeleteHistoryEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ClearHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) ListSaved(ctx context.Context) ([]domain.SavedSearch, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}

func (m *MockAPI) CreateSaved(ctx context.Context, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	args := m.Called(ctx, saved)
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}

func (m *MockAPI) UpdateSaved(ctx context.Context, id string, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	args := m.Called(ctx, id, saved)
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}

func (m *MockAPI) DeleteSaved(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.AuthTokens, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.AuthTokens), args.Error(1)
}

func (m *MockAPI) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) RequestPasswordReset(ctx context.Context, req domain.PasswordResetRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAPI) ResetPassword(ctx context.Context, req domain.PasswordResetConfirm) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAPI) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAPI) ResendVerification(ctx context.Context, req domain.ResendVerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
