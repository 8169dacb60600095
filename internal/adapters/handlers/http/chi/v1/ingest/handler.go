package ingest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 ingest routes
type HandlerV1 struct {
	ingestService port.IngestService
	logger        *slog.Logger
}

// NewIngestHandlerV1 creates HandlerV1
func NewIngestHandlerV1(service port.IngestService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		ingestService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListIngestV1)
	router.Post("/", h.TriggerIngestV1)
	router.Get("/{recordID}", h.GetIngestV1)
	router.Post("/{recordID}/retry", h.RetryIngestV1)
	router.Delete("/{recordID}", h.CancelIngestV1)

	return router
}

// V1IngestResponse is the public view of an ingest record
type V1IngestResponse struct {
	ID          uuid.UUID `json:"id"`
	ObjectKey   string    `json:"object_key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	SessionID   string    `json:"session_id,omitempty"`
	VideoID     string    `json:"video_id,omitempty"`
	JobID       string    `json:"job_id,omitempty"`
	Status      string    `json:"status"`
	Progress    float64   `json:"progress"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(record domain.IngestRecord) V1IngestResponse {
	return V1IngestResponse{
		ID:          record.ID,
		ObjectKey:   record.ObjectKey,
		ContentType: record.ContentType,
		SizeBytes:   record.SizeBytes,
		SessionID:   record.SessionID,
		VideoID:     record.VideoID,
		JobID:       record.JobID,
		Status:      string(record.Status),
		Progress:    record.Progress,
		Error:       record.Error,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func parseRecordID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	recordID, err := uuid.Parse(chi.URLParam(r, "recordID"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return recordID, true
}
