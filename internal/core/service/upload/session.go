package upload

import (
	"context"
	"fmt"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"
)

func (u *uploadService) InitiateUpload(ctx context.Context, req domain.InitiateUploadRequest) (*domain.UploadSession, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	session, err := u.api.InitiateUpload(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not initiate upload: %w", err)
	}
	u.logger.Info("upload session opened", "session", session.ID, "file", req.FileName, "size", req.Size)
	return session, nil
}

func (u *uploadService) CompleteUpload(ctx context.Context, sessionID string) (*domain.CompleteUploadResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidRequest)
	}
	result, err := u.api.CompleteUpload(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not complete upload %s: %w", sessionID, err)
	}
	u.logger.Info("upload session completed", "session", sessionID, "job", result.JobID, "video", result.VideoID)
	return result, nil
}

func (u *uploadService) CancelUpload(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", domain.ErrInvalidRequest)
	}
	if err := u.api.CancelUpload(ctx, sessionID); err != nil {
		return fmt.Errorf("could not cancel upload %s: %w", sessionID, err)
	}
	u.logger.Info("upload session cancelled", "session", sessionID)
	return nil
}

// ResumeUpload hands the session back to the backend at resumeURL. The backend knows which chunks landed.
func (u *uploadService) ResumeUpload(ctx context.Context, sessionID string, resumeURL string) (*domain.UploadSession, error) {
	if sessionID == "" || resumeURL == "" {
		return nil, fmt.Errorf("%w: session id and resume url are required", domain.ErrInvalidRequest)
	}
	session, err := u.api.ResumeUpload(ctx, sessionID, resumeURL)
	if err != nil {
		return nil, fmt.Errorf("could not resume upload %s: %w", sessionID, err)
	}
	if session.UploadURL == "" {
		session.UploadURL = resumeURL
	}
	u.logger.Info("upload session resumed", "session", sessionID, "chunk", session.CurrentChunk)
	return session, nil
}

// Upload runs initiate, chunk upload and complete. On failure the session is left open
// so the caller can cancel or resume it.
func (u *uploadService) Upload(ctx context.Context, req domain.InitiateUploadRequest, source port.ChunkSource, onProgress port.ProgressFunc) (*domain.UploadSession, *domain.CompleteUploadResult, error) {
	session, err := u.InitiateUpload(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if err := u.UploadFile(ctx, source, session.UploadURL, onProgress); err != nil {
		return session, nil, err
	}
	result, err := u.CompleteUpload(ctx, session.ID)
	if err != nil {
		return session, nil, err
	}
	return session, result, nil
}
