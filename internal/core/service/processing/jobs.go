package processing

import (
	"context"
	"fmt"
	"training-reels/internal/core/domain"
)

func (s *processingService) GetStatus(ctx context.Context, jobID string) (*domain.ProcessingStatus, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: job id is required", domain.ErrInvalidRequest)
	}
	return s.api.GetProcessingStatus(ctx, jobID)
}

// RetryJob restarts jobID. It does not touch any running poll loop.
func (s *processingService) RetryJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return fmt.Errorf("%w: job id is required", domain.ErrInvalidRequest)
	}
	if err := s.api.RetryJob(ctx, jobID); err != nil {
		return fmt.Errorf("could not retry job %s: %w", jobID, err)
	}
	s.logger.Info("processing job retried", "job", jobID)
	return nil
}

// CancelJob cancels jobID. Poll loops following the job keep running until they observe it.
func (s *processingService) CancelJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return fmt.Errorf("%w: job id is required", domain.ErrInvalidRequest)
	}
	if err := s.api.CancelJob(ctx, jobID); err != nil {
		return fmt.Errorf("could not cancel job %s: %w", jobID, err)
	}
	s.logger.Info("processing job cancelled", "job", jobID)
	return nil
}
