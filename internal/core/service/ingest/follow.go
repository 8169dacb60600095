package ingest

import (
	"context"
	"errors"
	"training-reels/internal/core/domain"
)

// follow polls the processing job of record until it settles and mirrors it in the ledger
func (s *ingestService) follow(ctx context.Context, record domain.IngestRecord) {
	logger := s.logger.With("record", record.ID, "job", record.JobID)

	final, err := s.processing.PollStatus(ctx, record.JobID, func(status domain.ProcessingStatus) {
		if status.Progress == record.Progress {
			return
		}
		record.Progress = status.Progress
		if err := s.repo.UpdateProgress(ctx, record.ID, record.Progress); err != nil {
			logger.Debug("could not store processing progress", "error", err)
		}
		s.publish(ctx, record)
	}, 0)

	switch {
	case err == nil:
		s.settle(&record, final)
	case errors.Is(err, domain.ErrPollTimeout):
		logger.Warn("processing did not settle", "error", err)
		s.setStatus(&record, domain.IngestStatusFailed, err.Error())
	case ctx.Err() != nil:
		logger.Info("stopped following processing job")
	default:
		logger.Error("processing follow up failed", "error", err)
		s.setStatus(&record, domain.IngestStatusFailed, err.Error())
	}
}

func (s *ingestService) settle(record *domain.IngestRecord, final *domain.ProcessingStatus) {
	switch final.Status {
	case domain.JobStatusCompleted:
		s.setStatus(record, domain.IngestStatusCompleted, "")
	case domain.JobStatusCancelled:
		s.setStatus(record, domain.IngestStatusCancelled, final.Error)
	default:
		msg := final.Error
		if msg == "" {
			msg = "processing failed"
		}
		s.setStatus(record, domain.IngestStatusFailed, msg)
	}
	s.logger.Info("ingest settled", "record", record.ID, "job", record.JobID, "status", record.Status)
}
