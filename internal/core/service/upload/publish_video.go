package upload

import (
	"context"
	"fmt"
	"training-reels/internal/core/domain"
)

func (u *uploadService) PublishVideo(ctx context.Context, req domain.PublishVideoRequest) (*domain.Video, error) {
	if req.Visibility == "" {
		req.Visibility = domain.VisibilityOrganization
	}
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	video, err := u.api.PublishVideo(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not publish video: %w", err)
	}
	return video, nil
}
