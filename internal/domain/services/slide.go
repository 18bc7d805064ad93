package services

import (
	"context"

	"marquee/internal/domain/models"
	"marquee/internal/schedule"
)

// SlideService handles slide business logic: schedule compilation on create
// and edit, and dense position management within playlists.
type SlideService interface {
	// CreateSlide creates a slide or a notification. The scheduling
	// request is compiled into recurrence descriptors; the notification
	// flag fixes the slide's mode vocabulary forever.
	CreateSlide(ctx context.Context, req *CreateSlideRequest) (*models.Slide, error)

	// GetSlide retrieves a slide by ID.
	GetSlide(ctx context.Context, id string) (*models.Slide, error)

	// UpdateSlide edits a slide. When a scheduling request is present it
	// is recompiled under the slide's original notification vocabulary;
	// otherwise the stored descriptors are kept.
	UpdateSlide(ctx context.Context, id string, req *UpdateSlideRequest) (*models.Slide, error)

	// DeleteSlide removes a slide independently of its content and
	// playlist.
	DeleteSlide(ctx context.Context, id string) error

	// ListByPlaylist lists a playlist's slides ordered by (position, id).
	ListByPlaylist(ctx context.Context, playlistID string) ([]models.Slide, error)

	// UpdatePositions applies a bulk reposition mapping of slide id to
	// new position as one batch. Ties between positions are permitted.
	UpdatePositions(ctx context.Context, positions map[string]int) error
}

// CreateSlideRequest represents a slide creation request. Optional fields
// default to the original editing surface's values: enabled, 3 seconds,
// position 999 (appended after existing slides).
type CreateSlideRequest struct {
	ContentID        string            `json:"content_id"`
	PlaylistID       string            `json:"playlist_id"`
	Enabled          *bool             `json:"enabled,omitempty"`
	DelegateDuration bool              `json:"delegate_duration"`
	Duration         *int              `json:"duration,omitempty"`
	Position         *int              `json:"position,omitempty"`
	IsNotification   bool              `json:"-"`
	Scheduling       *schedule.Request `json:"scheduling,omitempty"`
}

// UpdateSlideRequest represents a slide edit. Nil fields keep stored
// values.
type UpdateSlideRequest struct {
	ContentID        *string           `json:"content_id,omitempty"`
	Enabled          *bool             `json:"enabled,omitempty"`
	DelegateDuration *bool             `json:"delegate_duration,omitempty"`
	Duration         *int              `json:"duration,omitempty"`
	Position         *int              `json:"position,omitempty"`
	Scheduling       *schedule.Request `json:"scheduling,omitempty"`
}
