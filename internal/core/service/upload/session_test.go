package upload_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInitiateRequest() domain.InitiateUploadRequest {
	return domain.InitiateUploadRequest{
		FileName:    "spindle.mp4",
		ContentType: "video/mp4",
		Size:        10,
		Title:       "Spindle maintenance",
		Tags:        []string{"maintenance"},
	}
}

func TestUploadService_InitiateUpload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		api := restapi.NewMockAPI()
		req := validInitiateRequest()
		api.On("InitiateUpload", ctx, req).Return(&domain.UploadSession{ID: "s1", UploadURL: "/chunks/s1"}, nil)
		service := upload.NewUploadService(api, config.UploadConfig{}, discardLogger)

		// Act
		session, err := service.InitiateUpload(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "s1", session.ID)
		api.AssertExpectations(t)
	})

	t.Run("error - invalid request never reaches the api", func(t *testing.T) {
		// Arrange
		api := restapi.NewMockAPI()
		req := validInitiateRequest()
		req.Title = ""
		service := upload.NewUploadService(api, config.UploadConfig{}, discardLogger)

		// Act
		_, err := service.InitiateUpload(context.Background(), req)

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		api.AssertNotCalled(t, "InitiateUpload", mock.Anything, mock.Anything)
	})
}

func TestUploadService_CancelAndResume(t *testing.T) {
	// Arrange
	ctx := context.Background()
	api := restapi.NewMockAPI()
	api.On("CancelUpload", ctx, "s1").Return(nil)
	api.On("ResumeUpload", ctx, "s1", "/chunks/s1/resume").Return(&domain.UploadSession{ID: "s1", CurrentChunk: 3}, nil)
	service := upload.NewUploadService(api, config.UploadConfig{}, discardLogger)

	// Act
	cancelErr := service.CancelUpload(ctx, "s1")
	session, resumeErr := service.ResumeUpload(ctx, "s1", "/chunks/s1/resume")
	_, missingErr := service.ResumeUpload(ctx, "s1", "")

	// Assert
	assert.NoError(t, cancelErr)
	require.NoError(t, resumeErr)
	assert.Equal(t, "/chunks/s1/resume", session.UploadURL)
	assert.Equal(t, 3, session.CurrentChunk)
	assert.ErrorIs(t, missingErr, domain.ErrInvalidRequest)
	api.AssertExpectations(t)
}

func TestUploadService_Upload(t *testing.T) {
	t.Run("success - initiate, chunks, complete", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		api := restapi.NewMockAPI()
		req := validInitiateRequest()
		api.On("InitiateUpload", ctx, req).Return(&domain.UploadSession{ID: "s1", UploadURL: "/chunks/s1"}, nil)
		recordChunks(api, -1, nil)
		api.On("CompleteUpload", ctx, "s1").Return(&domain.CompleteUploadResult{VideoID: "v1", JobID: "j1"}, nil)
		service := upload.NewUploadService(api, config.UploadConfig{ChunkSize: 4}, discardLogger)

		// Act
		session, result, err := service.Upload(ctx, req, bytes.NewReader([]byte("0123456789")), nil)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "s1", session.ID)
		assert.Equal(t, "j1", result.JobID)
		api.AssertNumberOfCalls(t, "UploadChunk", 3)
		api.AssertExpectations(t)
	})

	t.Run("error - chunk failure leaves session open", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		api := restapi.NewMockAPI()
		req := validInitiateRequest()
		api.On("InitiateUpload", ctx, req).Return(&domain.UploadSession{ID: "s1", UploadURL: "/chunks/s1"}, nil)
		recordChunks(api, 0, errors.New("unreachable"))
		service := upload.NewUploadService(api, config.UploadConfig{ChunkSize: 4}, discardLogger)

		// Act
		session, result, err := service.Upload(ctx, req, bytes.NewReader([]byte("0123456789")), nil)

		// Assert
		assert.ErrorIs(t, err, domain.ErrChunkUploadFailed)
		assert.Equal(t, "s1", session.ID)
		assert.Nil(t, result)
		api.AssertNotCalled(t, "CompleteUpload", mock.Anything, mock.Anything)
		api.AssertNotCalled(t, "CancelUpload", mock.Anything, mock.Anything)
	})
}

func TestUploadService_PublishVideo(t *testing.T) {
	// Arrange
	ctx := context.Background()
	api := restapi.NewMockAPI()
	expected := domain.PublishVideoRequest{UploadID: "s1", Title: "Coolant flush", Visibility: domain.VisibilityOrganization}
	api.On("PublishVideo", ctx, expected).Return(&domain.Video{ID: "v1", Title: "Coolant flush"}, nil)
	service := upload.NewUploadService(api, config.UploadConfig{}, discardLogger)

	// Act
	video, err := service.PublishVideo(ctx, domain.PublishVideoRequest{UploadID: "s1", Title: "Coolant flush"})
	_, invalidErr := service.PublishVideo(ctx, domain.PublishVideoRequest{UploadID: "s1", Title: "x", Visibility: "everyone"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "v1", video.ID)
	assert.ErrorIs(t, invalidErr, domain.ErrInvalidRequest)
	api.AssertExpectations(t)
}
