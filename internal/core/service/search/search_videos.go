package search

import (
	"context"
	"strings"
	"time"
	"training-reels/internal/core/domain"
)

// SearchVideos runs a search and, when it succeeds for a non blank query, records the query as recent
func (s *searchService) SearchVideos(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	res, err := s.api.SearchVideos(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Query != "" {
		s.recent.Add(ctx, req.Query)
	}
	s.logger.Debug("search completed", "query", req.Query, "total", res.Total, "took_ms", res.TookMs)
	return res, nil
}

func (s *searchService) Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Suggestion{}, nil
	}
	return s.api.Suggestions(ctx, query)
}

func (s *searchService) Facets(ctx context.Context) ([]domain.Facet, error) {
	return s.api.Facets(ctx)
}

func (s *searchService) TrackAnalytics(ctx context.Context, event domain.SearchAnalyticsEvent) error {
	if err := domain.Validate(event); err != nil {
		return err
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return s.api.TrackAnalytics(ctx, event)
}
