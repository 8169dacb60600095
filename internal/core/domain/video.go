package domain

import "time"

// Visibility controls who can watch a video
type Visibility string

const (
	VisibilityPrivate      Visibility = "private"
	VisibilityOrganization Visibility = "organization"
	VisibilityPublic       Visibility = "public"
)

// Video is a published reel
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	MachineModel string     `json:"machineModel,omitempty"`
	Visibility   Visibility `json:"visibility"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Duration     float64    `json:"duration"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// PublishVideoRequest submits an uploaded video for publication
type PublishVideoRequest struct {
	UploadID     string     `json:"uploadId" validate:"required"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description,omitempty" validate:"max=5000"`
	Tags         []string   `json:"tags,omitempty" validate:"max=20,dive,required,max=50"`
	MachineModel string     `json:"machineModel,omitempty"`
	Visibility   Visibility `json:"visibility" validate:"omitempty,oneof=private organization public"`
}
