package search

import (
	"context"
	"training-reels/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of SearchService
type MockSearchService struct {
	mock.Mock
}

// NewMockSearchService creates a new MockSearchService
func NewMockSearchService() *MockSearchService {
	return &MockSearchService{}
}

func (m *MockSearchService) SearchVideos(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.SearchResponse), args.Error(1)
}

func (m *MockSearchService) Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockSearchService) Facets(ctx context.Context) ([]domain.Facet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Facet), args.Error(1)
}

func (m *MockSearchService) TrackAnalytics(ctx context.Context, event domain.SearchAnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSearchService) History(ctx context.Context) ([]domain.SearchHistoryEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SearchHistoryEntry), args.Error(1)
}

func (m *MockSearchService) DeleteHistoryEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSearchService) ClearHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSearchService) ListSaved(ctx context.Context) ([]domain.SavedSearch, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}

func (m *MockSearchService) CreateSaved(ctx context.Context, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	args := m.Called(ctx, saved)
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}

func (m *MockSearchService) UpdateSaved(ctx context.Context, id string, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	args := m.Called(ctx, id, saved)
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}

func (m *MockSearchService) DeleteSaved(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSearchService) RecentSearches(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockSearchService) AddRecentSearch(ctx context.Context, query string) {
	m.Called(ctx, query)
}

func (m *MockSearchService) ClearRecentSearches(ctx context.Context) {
	m.Called(ctx)
}
