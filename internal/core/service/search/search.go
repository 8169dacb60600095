package search

import (
	"log/slog"
	"training-reels/internal/core/port"
)

type searchService struct {
	api    port.SearchAPI
	recent port.RecentSearchStore
	logger *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(api port.SearchAPI, recent port.RecentSearchStore, logger *slog.Logger) port.SearchService {
	return &searchService{
		api:    api,
		recent: recent,
		logger: logger,
	}
}
