package search

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 search routes
type HandlerV1 struct {
	searchService port.SearchService
	logger        *slog.Logger
}

// NewSearchHandlerV1 creates HandlerV1
func NewSearchHandlerV1(service port.SearchService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		searchService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.SearchVideosV1)
	router.Get("/recent", h.RecentSearchesV1)
	router.Delete("/recent", h.ClearRecentSearchesV1)
	router.Get("/suggestions", h.SuggestionsV1)
	router.Get("/facets", h.FacetsV1)

	return router
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// writeError maps service errors, upstream HTTP errors are surfaced as bad gateway
func (h *HandlerV1) writeError(w http.ResponseWriter, msg string, err error) {
	var httpErr *restapi.HTTPError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &httpErr):
		h.logger.Error(msg, "status", httpErr.StatusCode, "error", err)
		http.Error(w, "search backend error", http.StatusBadGateway)
	default:
		h.logger.Error(msg, "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}
}
