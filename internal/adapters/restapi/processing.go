package restapi

import (
	"context"
	"net/http"
	"net/url"
	"training-reels/internal/core/domain"
)

// GetProcessingStatus fetches the current status of a job
func (c *Client) GetProcessingStatus(ctx context.Context, jobID string) (*domain.ProcessingStatus, error) {
	var status domain.ProcessingStatus
	if err := c.doJSON(ctx, http.MethodGet, "/processing/status/"+url.PathEscape(jobID), nil, &status); err != nil {
		return nil, err
	}
	if status.JobID == "" {
		status.JobID = jobID
	}
	return &status, nil
}

// RetryJob restarts a failed job
func (c *Client) RetryJob(ctx context.Context, jobID string) error {
	return c.doJSON(ctx, http.MethodPost, "/processing/"+url.PathEscape(jobID)+"/retry", nil, nil)
}

// CancelJob stops a job
func (c *Client) CancelJob(ctx context.Context, jobID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/processing/"+url.PathEscape(jobID), nil, nil)
}
