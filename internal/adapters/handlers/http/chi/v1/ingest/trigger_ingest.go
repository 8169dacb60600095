package ingest

import (
	"encoding/json"
	"errors"
	"net/http"
	"training-reels/internal/core/domain"
)

// V1TriggerIngestRequest is the body of a manual ingest
type V1TriggerIngestRequest struct {
	ObjectKey string `json:"object_key"`
}

// TriggerIngestV1 starts the ingest of an object already in the bucket
func (h *HandlerV1) TriggerIngestV1(w http.ResponseWriter, r *http.Request) {
	var req V1TriggerIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding trigger ingest request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ObjectKey == "" {
		http.Error(w, "object_key is required", http.StatusBadRequest)
		return
	}

	record, err := h.ingestService.Ingest(r.Context(), req.ObjectKey)
	switch {
	case errors.Is(err, domain.ErrAlreadyIngested):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidFileType):
		http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, domain.ErrFileSizeTooBig):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrEmptyFile):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.logger.Error("error triggering ingest", "key", req.ObjectKey, "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	default:
		h.writeJSON(w, http.StatusAccepted, toResponse(*record))
	}
}
