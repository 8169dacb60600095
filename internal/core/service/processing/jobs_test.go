package processing_test

import (
	"context"
	"errors"
	"testing"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/service/processing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetryJob(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("RetryJob", mock.Anything, "job-1").Return(nil)
	service := processing.NewProcessingService(api, pollConfig, discardLogger)

	// Act
	err := service.RetryJob(context.Background(), "job-1")

	// Assert
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestCancelJob_PropagatesAPIError(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("CancelJob", mock.Anything, "job-1").Return(domain.ErrNotFound)
	service := processing.NewProcessingService(api, pollConfig, discardLogger)

	// Act
	err := service.CancelJob(context.Background(), "job-1")

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobOperations_RequireJobID(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := processing.NewProcessingService(api, pollConfig, discardLogger)
	ctx := context.Background()

	// Act
	_, getErr := service.GetStatus(ctx, "")
	retryErr := service.RetryJob(ctx, "")
	cancelErr := service.CancelJob(ctx, "")

	// Assert
	for _, err := range []error{getErr, retryErr, cancelErr} {
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	}
	api.AssertNotCalled(t, "GetProcessingStatus", mock.Anything, mock.Anything)
}
