package ingest

import (
	"errors"
	"net/http"
	"training-reels/internal/core/domain"
)

// GetIngestV1 returns one ingest record
func (h *HandlerV1) GetIngestV1(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	record, err := h.ingestService.Get(r.Context(), recordID)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		http.Error(w, "ingest record not found", http.StatusNotFound)
	case err != nil:
		h.logger.Error("error getting ingest record", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	default:
		h.writeJSON(w, http.StatusOK, toResponse(*record))
	}
}
