package ingest

import (
	"context"
	"fmt"
	"training-reels/internal/core/domain"

	"github.com/google/uuid"
)

// RetryJob asks the platform to rerun the processing job of a failed or cancelled record and
// follows it again
func (s *ingestService) RetryJob(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.IngestStatusFailed && record.Status != domain.IngestStatusCancelled {
		return nil, fmt.Errorf("%w: record %s is %s", domain.ErrInvalidRequest, id, record.Status)
	}
	if record.JobID == "" {
		return nil, fmt.Errorf("%w: record %s", domain.ErrJobNotStarted, id)
	}
	if s.isRunning(id) {
		return nil, fmt.Errorf("%w: record %s is still being followed", domain.ErrInvalidRequest, id)
	}

	if err := s.processing.RetryJob(ctx, record.JobID); err != nil {
		return nil, err
	}

	record.Progress = 0
	if err := s.repo.UpdateProgress(ctx, id, 0); err != nil {
		s.logger.Debug("could not reset progress", "record", id, "error", err)
	}
	s.setStatus(record, domain.IngestStatusProcessing, "")

	retried := *record
	s.spawn(id, func(ctx context.Context) {
		s.follow(ctx, retried)
	})
	return record, nil
}

// CancelJob stops a record wherever it is: an upload in flight is abandoned, a processing job is cancelled
func (s *ingestService) CancelJob(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	switch record.Status {
	case domain.IngestStatusCompleted, domain.IngestStatusFailed, domain.IngestStatusCancelled:
		return fmt.Errorf("%w: record %s is already %s", domain.ErrInvalidRequest, id, record.Status)
	}

	if record.JobID != "" {
		if err := s.processing.CancelJob(ctx, record.JobID); err != nil {
			return err
		}
	}

	if s.abort(id) && record.Status == domain.IngestStatusUploading {
		// the transfer records the cancellation itself once its context is done
		return nil
	}
	if record.Status == domain.IngestStatusUploading && record.SessionID != "" {
		s.abandonSession(record.SessionID)
	}

	s.setStatus(record, domain.IngestStatusCancelled, "")
	return nil
}
