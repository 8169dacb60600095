package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"
)

// UploadFile sends source to uploadURL chunk by chunk, in order, one request at a time.
// The first failing chunk aborts the upload with a *domain.ChunkError.
func (u *uploadService) UploadFile(ctx context.Context, source port.ChunkSource, uploadURL string, onProgress port.ProgressFunc) error {
	size := source.Size()
	total := domain.ChunkCount(size, u.chunkSize)
	if total == 0 {
		return domain.ErrEmptyFile
	}

	for index := 0; index < total; index++ {
		offset := int64(index) * u.chunkSize
		data := make([]byte, min(u.chunkSize, size-offset))

		n, err := source.ReadAt(data, offset)
		if n < len(data) {
			if err == nil || errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("failed to read chunk %d: %w", index, err)
		}

		chunk := domain.Chunk{Index: index, Total: total, Offset: offset, Data: data}
		if err := u.api.UploadChunk(ctx, uploadURL, chunk); err != nil {
			statusText := err.Error()
			var withStatus interface{ StatusText() string }
			if errors.As(err, &withStatus) {
				statusText = withStatus.StatusText()
			}
			u.logger.Error("chunk upload failed", "chunk", index, "total", total, "error", err)
			return &domain.ChunkError{Index: index, StatusText: statusText, Err: err}
		}

		u.logger.Debug("chunk uploaded", "chunk", index, "total", total, "bytes", len(data))
		if onProgress != nil {
			onProgress(float64(index+1) / float64(total) * 100)
		}
	}
	return nil
}
