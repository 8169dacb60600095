package port

import (
	"context"
	"time"
	"training-reels/internal/core/domain"

	"github.com/google/uuid"
)

// ObjectStorage reads the objects the ingest daemon uploads
type ObjectStorage interface {
	OpenObject(ctx context.Context, objectKey string) (ChunkSource, error)
	StatObject(ctx context.Context, objectKey string) (size int64, contentType string, err error)
	GetHeaderBytes(ctx context.Context, objectKey string, n int64) ([]byte, error)
}

// IngestRepository is the ingest ledger
type IngestRepository interface {
	Create(ctx context.Context, record domain.IngestRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error)
	FindByObjectKey(ctx context.Context, objectKey string) (*domain.IngestRecord, error)
	List(ctx context.Context, status *domain.IngestStatus, limit int) ([]domain.IngestRecord, error)
	UpdateSession(ctx context.Context, id uuid.UUID, sessionID string) error
	UpdateProgress(ctx context.Context, id uuid.UUID, progress float64) error
	UpdateJob(ctx context.Context, id uuid.UUID, videoID, jobID string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IngestStatus, errMsg string) error
	FindStale(ctx context.Context, status domain.IngestStatus, before time.Time) ([]domain.IngestRecord, error)
}

// IngestService uploads bucket objects to the platform and follows their processing
type IngestService interface {
	MessageService
	Ingest(ctx context.Context, objectKey string) (*domain.IngestRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error)
	List(ctx context.Context, status *domain.IngestStatus, limit int) ([]domain.IngestRecord, error)
	RetryJob(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error)
	CancelJob(ctx context.Context, id uuid.UUID) error
	ReconcileStale(ctx context.Context, before time.Time) (int, error)
	ResumeProcessing(ctx context.Context, before time.Time) (int, error)
	Close() error
}
