package ingest

import (
	"errors"
	"net/http"
	"training-reels/internal/core/domain"
)

// RetryIngestV1 reruns the processing job of a record
func (h *HandlerV1) RetryIngestV1(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	record, err := h.ingestService.RetryJob(r.Context(), recordID)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		http.Error(w, "ingest record not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrJobNotStarted), errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrAlreadyIngested):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		h.logger.Error("error retrying ingest job", "record", recordID, "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	default:
		h.writeJSON(w, http.StatusAccepted, toResponse(*record))
	}
}

// CancelIngestV1 cancels the upload or processing of a record
func (h *HandlerV1) CancelIngestV1(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	err := h.ingestService.CancelJob(r.Context(), recordID)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		http.Error(w, "ingest record not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		h.logger.Error("error cancelling ingest", "record", recordID, "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
