package search_test

import (
	"context"
	"errors"
	"testing"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/service/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchVideos_RecordsRecentQuery(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("SearchVideos", mock.Anything, mock.MatchedBy(func(req domain.SearchRequest) bool {
		return req.Query == "spindle alignment"
	})).Return(&domain.SearchResponse{Total: 2}, nil)

	recent := newRecentStore(t)
	service := search.NewSearchService(api, recent, discardLogger)

	// Act
	res, err := service.SearchVideos(context.Background(), domain.SearchRequest{Query: " spindle alignment "})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, []string{"spindle alignment"}, service.RecentSearches(context.Background()))
}

func TestSearchVideos_BlankQueryNotRecorded(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("SearchVideos", mock.Anything, mock.Anything).Return(&domain.SearchResponse{}, nil)
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)

	// Act
	_, err := service.SearchVideos(context.Background(), domain.SearchRequest{Sort: domain.SortNewest})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, service.RecentSearches(context.Background()))
}

func TestSearchVideos_FailureNotRecorded(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("SearchVideos", mock.Anything, mock.Anything).Return((*domain.SearchResponse)(nil), errors.New("bad gateway"))
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)

	// Act
	_, err := service.SearchVideos(context.Background(), domain.SearchRequest{Query: "welding"})

	// Assert
	require.Error(t, err)
	assert.Empty(t, service.RecentSearches(context.Background()))
}

func TestSearchVideos_InvalidSort(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)

	// Act
	_, err := service.SearchVideos(context.Background(), domain.SearchRequest{Query: "x", Sort: "random"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	api.AssertNotCalled(t, "SearchVideos", mock.Anything, mock.Anything)
}

func TestSuggestions_BlankQuerySkipsAPI(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)

	// Act
	suggestions, err := service.Suggestions(context.Background(), "  ")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, suggestions)
	api.AssertNotCalled(t, "Suggestions", mock.Anything, mock.Anything)
}

func TestTrackAnalytics_StampsTime(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("TrackAnalytics", mock.Anything, mock.MatchedBy(func(e domain.SearchAnalyticsEvent) bool {
		return !e.OccurredAt.IsZero() && e.Action == "click"
	})).Return(nil)
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)

	// Act
	err := service.TrackAnalytics(context.Background(), domain.SearchAnalyticsEvent{Query: "lathe", Action: "click", VideoID: "v1"})

	// Assert
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestCreateSaved_RequiresName(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)

	// Act
	_, err := service.CreateSaved(context.Background(), domain.SavedSearch{Query: "lathe"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSavedAndHistory_RequireIDs(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := search.NewSearchService(api, newRecentStore(t), discardLogger)
	ctx := context.Background()

	// Act
	_, updateErr := service.UpdateSaved(ctx, "", domain.SavedSearch{Name: "n"})
	deleteErr := service.DeleteSaved(ctx, "")
	historyErr := service.DeleteHistoryEntry(ctx, "")

	// Assert
	assert.ErrorIs(t, updateErr, domain.ErrInvalidRequest)
	assert.ErrorIs(t, deleteErr, domain.ErrInvalidRequest)
	assert.ErrorIs(t, historyErr, domain.ErrInvalidRequest)
}

func TestClearRecentSearches(t *testing.T) {
	// Arrange
	service := search.NewSearchService(restapi.NewMockAPI(), newRecentStore(t), discardLogger)
	ctx := context.Background()
	service.AddRecentSearch(ctx, "hydraulic press")

	// Act
	service.ClearRecentSearches(ctx)

	// Assert
	assert.Empty(t, service.RecentSearches(ctx))
}
