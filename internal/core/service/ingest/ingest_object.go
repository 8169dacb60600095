package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Ingest checks objectKey, records it in the ledger and starts its transfer in the background
func (s *ingestService) Ingest(ctx context.Context, objectKey string) (*domain.IngestRecord, error) {
	objectKey = strings.TrimPrefix(strings.TrimSpace(objectKey), "/")
	if objectKey == "" {
		return nil, fmt.Errorf("%w: object key is required", domain.ErrInvalidRequest)
	}

	existing, err := s.repo.FindByObjectKey(ctx, objectKey)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != domain.IngestStatusFailed && existing.Status != domain.IngestStatusCancelled {
		return existing, fmt.Errorf("%w: %s is %s", domain.ErrAlreadyIngested, objectKey, existing.Status)
	}

	size, _, err := s.storage.StatObject(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, domain.ErrEmptyFile
	}
	if s.cfg.MaxSize > 0 && size > s.cfg.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", domain.ErrFileSizeTooBig, size)
	}

	header, err := s.storage.GetHeaderBytes(ctx, objectKey, headerSize)
	if err != nil {
		return nil, err
	}
	detected := mimetype.Detect(header)
	if !lo.ContainsBy(allowedVideoTypes, detected.Is) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFileType, detected.String())
	}

	now := time.Now().UTC()
	record := domain.IngestRecord{
		ID:          uuid.New(),
		ObjectKey:   objectKey,
		ContentType: detected.String(),
		SizeBytes:   size,
		Status:      domain.IngestStatusUploading,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.publish(ctx, record)

	s.spawn(record.ID, func(ctx context.Context) {
		s.transfer(ctx, record)
	})
	return &record, nil
}

func (s *ingestService) transfer(ctx context.Context, record domain.IngestRecord) {
	logger := s.logger.With("record", record.ID, "key", record.ObjectKey)

	source, err := s.storage.OpenObject(ctx, record.ObjectKey)
	if err != nil {
		s.fail(ctx, &record, "could not open object", err)
		return
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	name := path.Base(record.ObjectKey)
	session, err := s.uploads.InitiateUpload(ctx, domain.InitiateUploadRequest{
		FileName:    name,
		ContentType: record.ContentType,
		Size:        record.SizeBytes,
		Title:       titleFromName(name),
	})
	if err != nil {
		s.fail(ctx, &record, "could not open upload session", err)
		return
	}

	record.SessionID = session.ID
	if err := s.repo.UpdateSession(ctx, record.ID, session.ID); err != nil {
		logger.Warn("could not store upload session", "session", session.ID, "error", err)
	}

	if err := s.uploads.UploadFile(ctx, source, session.UploadURL, s.progressRecorder(ctx, &record)); err != nil {
		if !errors.Is(interruption(ctx, err), errShutdown) {
			s.abandonSession(session.ID)
		}
		s.fail(ctx, &record, "chunk upload failed", err)
		return
	}

	result, err := s.uploads.CompleteUpload(ctx, session.ID)
	if err != nil {
		s.fail(ctx, &record, "could not complete upload", err)
		return
	}

	record.VideoID, record.JobID = result.VideoID, result.JobID
	if err := s.repo.UpdateJob(ctx, record.ID, result.VideoID, result.JobID); err != nil {
		logger.Warn("could not store processing job", "job", result.JobID, "error", err)
	}
	s.setStatus(&record, domain.IngestStatusProcessing, "")

	s.follow(ctx, record)
}

// fail marks record failed, or cancelled when CancelJob stopped it. A transfer cut short by
// Close stays uploading.
func (s *ingestService) fail(ctx context.Context, record *domain.IngestRecord, msg string, err error) {
	switch interruption(ctx, err) {
	case errShutdown:
		s.logger.Info("transfer interrupted by shutdown", "record", record.ID, "session", record.SessionID)
		return
	case errAborted:
		s.logger.Info("transfer cancelled", "record", record.ID, "session", record.SessionID)
		s.setStatus(record, domain.IngestStatusCancelled, "")
		return
	}
	s.logger.Error(msg, "record", record.ID, "session", record.SessionID, "error", err)
	s.setStatus(record, domain.IngestStatusFailed, err.Error())
}

// abandonSession cancels a server side session that will not be completed
func (s *ingestService) abandonSession(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.uploads.CancelUpload(ctx, sessionID); err != nil {
		s.logger.Warn("could not cancel upload session", "session", sessionID, "error", err)
	}
}

// progressRecorder stores progress on whole percent changes only
func (s *ingestService) progressRecorder(ctx context.Context, record *domain.IngestRecord) port.ProgressFunc {
	last := -1
	return func(percent float64) {
		whole := int(percent)
		if whole == last {
			return
		}
		last = whole
		record.Progress = float64(whole)
		if err := s.repo.UpdateProgress(ctx, record.ID, record.Progress); err != nil {
			s.logger.Debug("could not store progress", "record", record.ID, "error", err)
		}
		s.publish(ctx, *record)
	}
}

func titleFromName(name string) string {
	title := strings.TrimSuffix(name, path.Ext(name))
	title = strings.NewReplacer("_", " ", "-", " ").Replace(title)
	title = strings.TrimSpace(title)
	if title == "" {
		return name
	}
	return title
}
