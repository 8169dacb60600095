package port

import (
	"context"
	"time"
	"training-reels/internal/core/domain"
)

// StatusFunc observes every successful poll
type StatusFunc func(status domain.ProcessingStatus)

// Sleeper waits between polls. It returns ctx.Err() when ctx ends first.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// ProcessingAPI is the processing part of the REST API
type ProcessingAPI interface {
	GetProcessingStatus(ctx context.Context, jobID string) (*domain.ProcessingStatus, error)
	RetryJob(ctx context.Context, jobID string) error
	CancelJob(ctx context.Context, jobID string) error
}

// ProcessingService polls and controls processing jobs
type ProcessingService interface {
	GetStatus(ctx context.Context, jobID string) (*domain.ProcessingStatus, error)
	PollStatus(ctx context.Context, jobID string, onStatus StatusFunc, maxAttempts int) (*domain.ProcessingStatus, error)
	RetryJob(ctx context.Context, jobID string) error
	CancelJob(ctx context.Context, jobID string) error
}
