package port

import (
	"context"
	"io"
	"training-reels/internal/core/domain"
)

// ChunkSource is a byte source of known size the upload driver slices into chunks
type ChunkSource interface {
	io.ReaderAt
	Size() int64
}

// ProgressFunc receives the upload percentage after each chunk
type ProgressFunc func(percent float64)

// UploadAPI is the upload part of the REST API
type UploadAPI interface {
	InitiateUpload(ctx context.Context, req domain.InitiateUploadRequest) (*domain.UploadSession, error)
	UploadChunk(ctx context.Context, uploadURL string, chunk domain.Chunk) error
	CompleteUpload(ctx context.Context, sessionID string) (*domain.CompleteUploadResult, error)
	CancelUpload(ctx context.Context, sessionID string) error
	ResumeUpload(ctx context.Context, sessionID string, resumeURL string) (*domain.UploadSession, error)
	PublishVideo(ctx context.Context, req domain.PublishVideoRequest) (*domain.Video, error)
}

// UploadService drives chunked uploads and the session lifecycle
type UploadService interface {
	InitiateUpload(ctx context.Context, req domain.InitiateUploadRequest) (*domain.UploadSession, error)
	UploadFile(ctx context.Context, source ChunkSource, uploadURL string, onProgress ProgressFunc) error
	CompleteUpload(ctx context.Context, sessionID string) (*domain.CompleteUploadResult, error)
	CancelUpload(ctx context.Context, sessionID string) error
	ResumeUpload(ctx context.Context, sessionID string, resumeURL string) (*domain.UploadSession, error)
	Upload(ctx context.Context, req domain.InitiateUploadRequest, source ChunkSource, onProgress ProgressFunc) (*domain.UploadSession, *domain.CompleteUploadResult, error)
	PublishVideo(ctx context.Context, req domain.PublishVideoRequest) (*domain.Video, error)
}
