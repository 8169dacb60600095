package domain

import (
	"time"

	"github.com/google/uuid"
)

// IngestStatus represents where an ingested object stands
type IngestStatus string

const (
	IngestStatusUploading  IngestStatus = "uploading"
	IngestStatusProcessing IngestStatus = "processing"
	IngestStatusCompleted  IngestStatus = "completed"
	IngestStatusFailed     IngestStatus = "failed"
	IngestStatusCancelled  IngestStatus = "cancelled"
)

// IngestRecord is a ledger row of the ingest daemon
type IngestRecord struct {
	ID          uuid.UUID    `json:"id"`
	ObjectKey   string       `json:"objectKey"`
	ContentType string       `json:"contentType"`
	SizeBytes   int64        `json:"sizeBytes"`
	SessionID   string       `json:"sessionId,omitempty"`
	VideoID     string       `json:"videoId,omitempty"`
	JobID       string       `json:"jobId,omitempty"`
	Status      IngestStatus `json:"status"`
	Progress    float64      `json:"progress"`
	Error       string       `json:"error,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// IngestEvent is published on every ingest state change
type IngestEvent struct {
	RecordID  uuid.UUID    `json:"recordId"`
	ObjectKey string       `json:"objectKey"`
	Status    IngestStatus `json:"status"`
	Progress  float64      `json:"progress"`
	JobID     string       `json:"jobId,omitempty"`
	Error     string       `json:"error,omitempty"`
	At        time.Time    `json:"at"`
}
