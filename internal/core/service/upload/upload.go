package upload

import (
	"log/slog"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"
)

type uploadService struct {
	api       port.UploadAPI
	chunkSize int64
	logger    *slog.Logger
}

// NewUploadService creates a new upload service. A zero chunk size falls back to domain.DefaultChunkSize.
func NewUploadService(api port.UploadAPI, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = domain.DefaultChunkSize
	}
	return &uploadService{api: api, chunkSize: chunkSize, logger: logger}
}
