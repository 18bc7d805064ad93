package repositories

import (
	"context"

	"marquee/internal/domain/models"
)

// SlideRepository defines data access operations for slides.
type SlideRepository interface {
	// Insert creates a new slide row.
	Insert(ctx context.Context, slide *models.Slide) error

	// GetByID retrieves a slide by ID.
	GetByID(ctx context.Context, id string) (*models.Slide, error)

	// Update rewrites a slide's mutable fields. IsNotification is never
	// rewritten.
	Update(ctx context.Context, slide *models.Slide) error

	// Delete removes a slide row.
	Delete(ctx context.Context, id string) error

	// ListByPlaylist lists a playlist's slides ordered by (position, id)
	// ascending. Tied positions are permitted; the id tiebreak keeps the
	// order stable.
	ListByPlaylist(ctx context.Context, playlistID string) ([]models.Slide, error)

	// UpdatePosition rewrites one slide's position. Unknown ids are a
	// no-op so a bulk reposition tolerates slides deleted concurrently.
	UpdatePosition(ctx context.Context, id string, position int) error

	// CountByContent counts slides referencing a content item (content
	// deletion guard).
	CountByContent(ctx context.Context, contentID string) (int, error)

	// CountByPlaylist counts slides owned by a playlist (playlist
	// deletion guard).
	CountByPlaylist(ctx context.Context, playlistID string) (int, error)
}
