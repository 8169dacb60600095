package ingest

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/google/uuid"
)

// headerSize is how many leading bytes are sniffed for the content type
const headerSize = 512

var (
	errShutdown = errors.New("ingest service closed")
	errAborted  = errors.New("ingest cancelled")
)

var allowedVideoTypes = []string{
	"video/mp4",
	"video/quicktime",
	"video/webm",
	"video/x-matroska",
	"video/x-msvideo",
	"video/mpeg",
	"video/3gpp",
}

type ingestService struct {
	storage    port.ObjectStorage
	repo       port.IngestRepository
	uploads    port.UploadService
	processing port.ProcessingService
	publisher  port.EventPublisher
	cfg        config.UploadConfig
	logger     *slog.Logger

	baseCtx context.Context
	stop    context.CancelCauseFunc
	wg      sync.WaitGroup

	mu      sync.Mutex
	running map[uuid.UUID]context.CancelCauseFunc
}

// NewIngestService creates a new ingest service. Transfers and processing follow ups run in the
// background until Close.
func NewIngestService(
	storage port.ObjectStorage,
	repo port.IngestRepository,
	uploads port.UploadService,
	processing port.ProcessingService,
	publisher port.EventPublisher,
	cfg config.UploadConfig,
	logger *slog.Logger,
) port.IngestService {
	baseCtx, stop := context.WithCancelCause(context.Background())
	return &ingestService{
		storage:    storage,
		repo:       repo,
		uploads:    uploads,
		processing: processing,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
		baseCtx:    baseCtx,
		stop:       stop,
		running:    make(map[uuid.UUID]context.CancelCauseFunc),
	}
}

// Close stops background work and waits for it. Interrupted records keep their status
// so that ReconcileStale can pick them up again.
func (s *ingestService) Close() error {
	s.stop(errShutdown)
	s.wg.Wait()
	return nil
}

// spawn runs fn for record id in the background. A second spawn for the same id is ignored.
func (s *ingestService) spawn(id uuid.UUID, fn func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.running[id]; ok {
		return false
	}
	if s.baseCtx.Err() != nil {
		return false
	}

	ctx, cancel := context.WithCancelCause(s.baseCtx)
	s.running[id] = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.running, id)
			s.mu.Unlock()
			cancel(nil)
		}()
		fn(ctx)
	}()
	return true
}

// abort cancels the background work of id, reporting whether there was any
func (s *ingestService) abort(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, ok := s.running[id]
	if ok {
		cancel(errAborted)
	}
	return ok
}

// interruption reports why err happened when it was caused by ctx ending: errShutdown or
// errAborted. It is nil for failures of their own.
func interruption(ctx context.Context, err error) error {
	if ctx.Err() == nil {
		return nil
	}
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if cause := context.Cause(ctx); errors.Is(cause, errShutdown) {
		return errShutdown
	}
	return errAborted
}

func (s *ingestService) isRunning(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[id]
	return ok
}

// publish never fails the caller, the ledger is the source of truth
func (s *ingestService) publish(ctx context.Context, record domain.IngestRecord) {
	event := domain.IngestEvent{
		RecordID:  record.ID,
		ObjectKey: record.ObjectKey,
		Status:    record.Status,
		Progress:  record.Progress,
		JobID:     record.JobID,
		Error:     record.Error,
		At:        time.Now().UTC(),
	}
	if err := s.publisher.PublishIngestEvent(ctx, event); err != nil {
		s.logger.Warn("could not publish ingest event", "record", record.ID, "status", record.Status, "error", err)
	}
}

// setStatus writes the status to the ledger and publishes it. It uses a fresh context
// so that a cancelled transfer still records how it ended.
func (s *ingestService) setStatus(record *domain.IngestRecord, status domain.IngestStatus, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record.Status = status
	record.Error = errMsg
	if err := s.repo.UpdateStatus(ctx, record.ID, status, errMsg); err != nil {
		s.logger.Error("could not update ingest status", "record", record.ID, "status", status, "error", err)
	}
	if status == domain.IngestStatusCompleted && record.Progress != 100 {
		record.Progress = 100
		if err := s.repo.UpdateProgress(ctx, record.ID, record.Progress); err != nil {
			s.logger.Debug("could not store progress", "record", record.ID, "error", err)
		}
	}
	s.publish(ctx, *record)
}

func (s *ingestService) Get(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ingestService) List(ctx context.Context, status *domain.IngestStatus, limit int) ([]domain.IngestRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.repo.List(ctx, status, limit)
}
