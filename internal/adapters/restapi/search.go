package restapi

import (
	"context"
	"net/http"
	"net/url"
	"training-reels/internal/core/domain"
)

// SearchVideos runs a search
func (c *Client) SearchVideos(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/search/videos", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Suggestions returns autocomplete proposals for q
func (c *Client) Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error) {
	var suggestions []domain.Suggestion
	path := "/api/search/suggestions?" + url.Values{"q": {query}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// Facets returns the available facets with their counts
func (c *Client) Facets(ctx context.Context) ([]domain.Facet, error) {
	var facets []domain.Facet
	if err := c.doJSON(ctx, http.MethodGet, "/api/search/facets", nil, &facets); err != nil {
		return nil, err
	}
	return facets, nil
}

func (c *Client) TrackAnalytics(ctx context.Context, event domain.SearchAnalyticsEvent) error {
	return c.doJSON(ctx, http.MethodPost, "/api/search/analytics", event, nil)
}

func (c *Client) History(ctx context.Context) ([]domain.SearchHistoryEntry, error) {
	var entries []domain.SearchHistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/api/search/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) DeleteHistoryEntry(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/search/history/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ClearHistory(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/search/history", nil, nil)
}

func (c *Client) ListSaved(ctx context.Context) ([]domain.SavedSearch, error) {
	var saved []domain.SavedSearch
	if err := c.doJSON(ctx, http.MethodGet, "/api/search/saved", nil, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *Client) CreateSaved(ctx context.Context, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	var created domain.SavedSearch
	if err := c.doJSON(ctx, http.MethodPost, "/api/search/saved", saved, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSaved(ctx context.Context, id string, saved domain.SavedSearch) (*domain.SavedSearch, error) {
	var updated domain.SavedSearch
	if err := c.doJSON(ctx, http.MethodPut, "/api/search/saved/"+url.PathEscape(id), saved, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSaved(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/search/saved/"+url.PathEscape(id), nil, nil)
}
