package restapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"training-reels/internal/core/domain"
)

// InitiateUpload opens an upload session
func (c *Client) InitiateUpload(ctx context.Context, req domain.InitiateUploadRequest) (*domain.UploadSession, error) {
	var session domain.UploadSession
	if err := c.doJSON(ctx, http.MethodPost, "/upload/initiate", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UploadChunk posts one chunk as multipart/form-data to uploadURL
func (c *Client) UploadChunk(ctx context.Context, uploadURL string, chunk domain.Chunk) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("chunk", fmt.Sprintf("chunk-%d", chunk.Index))
	if err != nil {
		return fmt.Errorf("failed to create chunk part: %w", err)
	}
	if _, err := part.Write(chunk.Data); err != nil {
		return fmt.Errorf("failed to write chunk part: %w", err)
	}
	if err := form.WriteField("chunkIndex", strconv.Itoa(chunk.Index)); err != nil {
		return err
	}
	if err := form.WriteField("totalChunks", strconv.Itoa(chunk.Total)); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.do(req, nil)
}

// CompleteUpload finalizes the session
func (c *Client) CompleteUpload(ctx context.Context, sessionID string) (*domain.CompleteUploadResult, error) {
	var result domain.CompleteUploadResult
	body := map[string]string{"uploadId": sessionID}
	if err := c.doJSON(ctx, http.MethodPost, "/upload/complete", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelUpload drops the session
func (c *Client) CancelUpload(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/upload/"+url.PathEscape(sessionID), nil, nil)
}

// ResumeUpload asks the backend to continue the session at resumeURL
func (c *Client) ResumeUpload(ctx context.Context, sessionID string, resumeURL string) (*domain.UploadSession, error) {
	var session domain.UploadSession
	body := map[string]string{"resumeUrl": resumeURL}
	if err := c.doJSON(ctx, http.MethodPost, "/upload/"+url.PathEscape(sessionID)+"/resume", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// PublishVideo submits an uploaded video
func (c *Client) PublishVideo(ctx context.Context, req domain.PublishVideoRequest) (*domain.Video, error) {
	var video domain.Video
	if err := c.doJSON(ctx, http.MethodPost, "/videos", req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}
