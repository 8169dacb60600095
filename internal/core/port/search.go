package port

import (
	"context"
	"training-reels/internal/core/domain"
)

// SearchAPI is the search part of the REST API
type SearchAPI interface {
	SearchVideos(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
	Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error)
	Facets(ctx context.Context) ([]domain.Facet, error)
	TrackAnalytics(ctx context.Context, event domain.SearchAnalyticsEvent) error
	History(ctx context.Context) ([]domain.SearchHistoryEntry, error)
	DeleteHistoryEntry(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) error
	ListSaved(ctx context.Context) ([]domain.SavedSearch, error)
	CreateSaved(ctx context.Context, saved domain.SavedSearch) (*domain.SavedSearch, error)
	UpdateSaved(ctx context.Context, id string, saved domain.SavedSearch) (*domain.SavedSearch, error)
	DeleteSaved(ctx context.Context, id string) error
}

// KeyValueStore is the client local persistence. Implementations may fail;
// callers decide how to degrade.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// RecentSearchStore keeps the most recent queries. It never fails.
type RecentSearchStore interface {
	List(ctx context.Context) []string
	Add(ctx context.Context, query string)
	Clear(ctx context.Context)
}

// SearchService is the search feature as seen by the CLI and gateway
type SearchService interface {
	SearchAPI
	RecentSearches(ctx context.Context) []string
	AddRecentSearch(ctx context.Context, query string)
	ClearRecentSearches(ctx context.Context)
}
