package domain

import (
	"errors"
	"fmt"
)

// ErrChunkUploadFailed is returned when a chunk upload gets a non-success response
var ErrChunkUploadFailed = errors.New("chunk upload failed")

// ErrPollTimeout is returned when the poll loop runs out of attempts without a terminal status
var ErrPollTimeout = errors.New("processing status polling timed out")

// ErrEmptyFile is returned when an upload source holds no bytes
var ErrEmptyFile = errors.New("file is empty")

// ErrUnauthorized is returned when the API rejects the credential
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when the API answers 404
var ErrNotFound = errors.New("not found")

// ErrInvalidRequest is returned when a request fails validation
var ErrInvalidRequest = errors.New("invalid request")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("invalid file type")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrRecordNotFound is returned when an ingest record does not exist
var ErrRecordNotFound = errors.New("ingest record not found")

// ErrAlreadyIngested is returned when an object already has a live ingest record
var ErrAlreadyIngested = errors.New("object already ingested")

// ErrJobNotStarted is returned when an ingest record has no processing job yet
var ErrJobNotStarted = errors.New("processing job not started")

// ErrMalformedEvent is returned for a bucket notification that can never be handled
var ErrMalformedEvent = errors.New("malformed bucket event")

// ErrNotSignedIn is returned when an operation needs a session and there is none
var ErrNotSignedIn = errors.New("not signed in")

// ChunkError identifies the chunk that made an upload fail.
type ChunkError struct {
	Index      int
	StatusText string
	Err        error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("failed to upload chunk %d: %s", e.Index, e.StatusText)
}

// Unwrap lets errors.Is match ErrChunkUploadFailed and the transport cause
func (e *ChunkError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrChunkUploadFailed}
	}
	return []error{ErrChunkUploadFailed, e.Err}
}
