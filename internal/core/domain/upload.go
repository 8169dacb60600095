package domain

import (
	"time"
)

// DefaultChunkSize is the size of every chunk but the last one
const DefaultChunkSize int64 = 5 << 20

// UploadSessionStatus represents the status of an upload session
type UploadSessionStatus string

const (
	UploadSessionStatusOpen      UploadSessionStatus = "open"
	UploadSessionStatusCompleted UploadSessionStatus = "completed"
	UploadSessionStatusCancelled UploadSessionStatus = "cancelled"
	UploadSessionStatusFailed    UploadSessionStatus = "failed"
)

// UploadSession represents a server side upload session
type UploadSession struct {
	ID           string              `json:"id"`
	UploadURL    string              `json:"uploadUrl"`
	TotalSize    int64               `json:"totalSize"`
	ChunkSize    int64               `json:"chunkSize"`
	CurrentChunk int                 `json:"currentChunk"`
	Status       UploadSessionStatus `json:"status"`
	ExpiresAt    *time.Time          `json:"expiresAt,omitempty"`
}

// Chunk is one contiguous slice of the uploaded file
type Chunk struct {
	Index  int
	Total  int
	Offset int64
	Data   []byte
}

// InitiateUploadRequest opens an upload session
type InitiateUploadRequest struct {
	FileName    string   `json:"fileName" validate:"required,max=255"`
	ContentType string   `json:"contentType" validate:"required"`
	Size        int64    `json:"fileSize" validate:"gt=0"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description,omitempty" validate:"max=5000"`
	Tags        []string `json:"tags,omitempty" validate:"max=20,dive,required,max=50"`
}

// CompleteUploadResult is returned once the backend assembled all chunks
type CompleteUploadResult struct {
	VideoID string `json:"videoId"`
	JobID   string `json:"jobId"`
}

// ChunkCount returns ceil(size/chunkSize)
func ChunkCount(size, chunkSize int64) int {
	if size <= 0 || chunkSize <= 0 {
		return 0
	}
	return int((size + chunkSize - 1) / chunkSize)
}
