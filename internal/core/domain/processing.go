package domain

import "time"

// JobStatus is the processing state of a job
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Terminal reports whether polling must stop on this status
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// ProcessingStatus is one observation of a processing job
type ProcessingStatus struct {
	JobID     string    `json:"jobId"`
	VideoID   string    `json:"videoId,omitempty"`
	Status    JobStatus `json:"status"`
	Progress  float64   `json:"progress"`
	Stage     string    `json:"stage,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
