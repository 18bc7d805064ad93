package repositories

import (
	"context"

	"marquee/internal/domain/models"
)

// PlaylistRepository defines data access operations for playlists.
type PlaylistRepository interface {
	// Insert creates a new playlist row.
	Insert(ctx context.Context, playlist *models.Playlist) error

	// GetByID retrieves a playlist by ID.
	GetByID(ctx context.Context, id string) (*models.Playlist, error)

	// Update rewrites a playlist's mutable fields.
	Update(ctx context.Context, playlist *models.Playlist) error

	// Delete removes a playlist row. The emptiness guard is the service's
	// precondition.
	Delete(ctx context.Context, id string) error

	// ListAll retrieves every playlist ordered by name.
	ListAll(ctx context.Context) ([]models.Playlist, error)
}
