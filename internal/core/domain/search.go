package domain

import "time"

// MaxRecentSearches is the capacity of the recent searches list
const MaxRecentSearches = 10

// SortOrder orders search results
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPopular   SortOrder = "popular"
)

// SearchFilters narrows a search
type SearchFilters struct {
	MachineModels []string   `json:"machineModels,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	MinDuration   *float64   `json:"minDuration,omitempty" validate:"omitempty,gte=0"`
	MaxDuration   *float64   `json:"maxDuration,omitempty" validate:"omitempty,gte=0"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
}

// SearchRequest is the body of POST /api/search/videos
type SearchRequest struct {
	Query    string        `json:"query" validate:"max=500"`
	Filters  SearchFilters `json:"filters"`
	Sort     SortOrder     `json:"sort,omitempty" validate:"omitempty,oneof=relevance newest oldest popular"`
	Page     int           `json:"page" validate:"gte=0"`
	PageSize int           `json:"pageSize" validate:"gte=0,lte=100"`
}

// SearchResult is one hit
type SearchResult struct {
	Video      Video    `json:"video"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights,omitempty"`
}

// FacetValue is one bucket of a facet
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facet is a filterable attribute dimension with value counts
type Facet struct {
	Name   string       `json:"name"`
	Values []FacetValue `json:"values"`
}

// SearchResponse is returned by the search backend
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Facets  []Facet        `json:"facets,omitempty"`
	TookMs  int64          `json:"tookMs"`
}

// Suggestion is an autocomplete proposal
type Suggestion struct {
	Text  string `json:"text"`
	Type  string `json:"type,omitempty"`
	Count int    `json:"count,omitempty"`
}

// SearchHistoryEntry is a server side history item
type SearchHistoryEntry struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	Filters     SearchFilters `json:"filters"`
	ResultCount int           `json:"resultCount"`
	SearchedAt  time.Time     `json:"searchedAt"`
}

// SavedSearch is a named search the user kept
type SavedSearch struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name" validate:"required,max=100"`
	Query     string        `json:"query" validate:"max=500"`
	Filters   SearchFilters `json:"filters"`
	Notify    bool          `json:"notify"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// SearchAnalyticsEvent reports a user interaction with results
type SearchAnalyticsEvent struct {
	Query       string    `json:"query"`
	Action      string    `json:"action" validate:"required,oneof=search click play save"`
	VideoID     string    `json:"videoId,omitempty"`
	Position    int       `json:"position,omitempty"`
	ResultCount int       `json:"resultCount,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}
