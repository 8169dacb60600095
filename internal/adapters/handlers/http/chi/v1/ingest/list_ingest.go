package ingest

import (
	"net/http"
	"strconv"
	"training-reels/internal/core/domain"

	"github.com/samber/lo"
)

var listableStatuses = []domain.IngestStatus{
	domain.IngestStatusUploading,
	domain.IngestStatusProcessing,
	domain.IngestStatusCompleted,
	domain.IngestStatusFailed,
	domain.IngestStatusCancelled,
}

// ListIngestV1 lists the latest ingest records, ?status= and ?limit= narrow it
func (h *HandlerV1) ListIngestV1(w http.ResponseWriter, r *http.Request) {
	var status *domain.IngestStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.IngestStatus(raw)
		if !lo.Contains(listableStatuses, s) {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		status = &s
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.ingestService.List(r.Context(), status, limit)
	if err != nil {
		h.logger.Error("error listing ingest records", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, http.StatusOK, lo.Map(records, func(record domain.IngestRecord, _ int) V1IngestResponse {
		return toResponse(record)
	}))
}
