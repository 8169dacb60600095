package search

import "net/http"

// V1RecentSearchesResponse lists the recent queries, newest first
type V1RecentSearchesResponse struct {
	Queries []string `json:"queries"`
}

func (h *HandlerV1) RecentSearchesV1(w http.ResponseWriter, r *http.Request) {
	queries := h.searchService.RecentSearches(r.Context())
	if queries == nil {
		queries = []string{}
	}
	h.writeJSON(w, http.StatusOK, V1RecentSearchesResponse{Queries: queries})
}

func (h *HandlerV1) ClearRecentSearchesV1(w http.ResponseWriter, r *http.Request) {
	h.searchService.ClearRecentSearches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
