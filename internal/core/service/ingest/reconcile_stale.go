package ingest

import (
	"context"
	"time"
	"training-reels/internal/core/domain"
)

// ReconcileStale fails records stuck uploading since before. Records this process is still
// transferring are left alone.
func (s *ingestService) ReconcileStale(ctx context.Context, before time.Time) (int, error) {
	stale, err := s.repo.FindStale(ctx, domain.IngestStatusUploading, before)
	if err != nil {
		return 0, err
	}

	reconciled := 0
	for _, record := range stale {
		if s.isRunning(record.ID) {
			continue
		}
		if record.SessionID != "" {
			s.abandonSession(record.SessionID)
		}
		s.setStatus(&record, domain.IngestStatusFailed, "upload session expired")
		reconciled++
	}

	s.logger.Info("stale ingest records reconciled", "count", reconciled, "before", before)
	return reconciled, nil
}

// ResumeProcessing follows again the processing records last updated before and not followed
// by this process, e.g. after a restart. A record without a job cannot be followed and fails.
func (s *ingestService) ResumeProcessing(ctx context.Context, before time.Time) (int, error) {
	records, err := s.repo.FindStale(ctx, domain.IngestStatusProcessing, before)
	if err != nil {
		return 0, err
	}

	resumed := 0
	for _, record := range records {
		if record.JobID == "" {
			if !s.isRunning(record.ID) {
				s.setStatus(&record, domain.IngestStatusFailed, "processing job unknown")
			}
			continue
		}
		if s.spawn(record.ID, func(ctx context.Context) { s.follow(ctx, record) }) {
			resumed++
		}
	}

	if resumed > 0 {
		s.logger.Info("processing follow ups resumed", "count", resumed, "before", before)
	}
	return resumed, nil
}
