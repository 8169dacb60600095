package search

import (
	"context"
	"fmt"
	"training-reels/internal/core/domain"
)

func (s *searchService) History(ctx context.Context) ([]domain.SearchHistoryEntry, error) {
	return s.api.History(ctx)
}

func (s *searchService) DeleteHistoryEntry(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: history entry id is required", domain.ErrInvalidRequest)
	}
	return s.api.DeleteHistoryEntry(ctx, id)
}

func (s *searchService) ClearHistory(ctx context.Context) error {
	return s.api.ClearHistory(ctx)
}

func (s *searchService) ListSaved(ctx context.Context) ([]domain.SavedSearch, error) {
	return s.api.ListSaved(ctx)
}

func (s *searchService) CreateSaved(ctx context.Context, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	if err := domain.Validate(saved); err != nil {
		return nil, err
	}
	return s.api.CreateSaved(ctx, saved)
}

func (s *searchService) UpdateSaved(ctx context.Context, id string, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: saved search id is required", domain.ErrInvalidRequest)
	}
	if err := domain.Validate(saved); err != nil {
		return nil, err
	}
	return s.api.UpdateSaved(ctx, id, saved)
}

func (s *searchService) DeleteSaved(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: saved search id is required", domain.ErrInvalidRequest)
	}
	return s.api.DeleteSaved(ctx, id)
}

func (s *searchService) RecentSearches(ctx context.Context) []string {
	return s.recent.List(ctx)
}

func (s *searchService) AddRecentSearch(ctx context.Context, query string) {
	s.recent.Add(ctx, query)
}

func (s *searchService) ClearRecentSearches(ctx context.Context) {
	s.recent.Clear(ctx)
}
