package search

import (
	"encoding/json"
	"net/http"
	"training-reels/internal/core/domain"
)

// SearchVideosV1 forwards a search to the platform and remembers the query
func (h *HandlerV1) SearchVideosV1(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding search request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.searchService.SearchVideos(r.Context(), req)
	if err != nil {
		h.writeError(w, "error searching videos", err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// SuggestionsV1 returns autocomplete proposals for ?q=
func (h *HandlerV1) SuggestionsV1(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.searchService.Suggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, "error fetching suggestions", err)
		return
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}

	h.writeJSON(w, http.StatusOK, suggestions)
}

// FacetsV1 returns the filterable dimensions
func (h *HandlerV1) FacetsV1(w http.ResponseWriter, r *http.Request) {
	facets, err := h.searchService.Facets(r.Context())
	if err != nil {
		h.writeError(w, "error fetching facets", err)
		return
	}

	h.writeJSON(w, http.StatusOK, facets)
}
