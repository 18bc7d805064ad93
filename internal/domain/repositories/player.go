package repositories

import (
	"context"

	"marquee/internal/domain/models"
)

// NodePlayerRepository defines data access operations for fleet players.
type NodePlayerRepository interface {
	PlacementRepository

	// Insert creates a new player row.
	Insert(ctx context.Context, player *models.NodePlayer) error

	// GetByID retrieves a player by ID.
	GetByID(ctx context.Context, id string) (*models.NodePlayer, error)

	// Update rewrites a player's mutable fields.
	Update(ctx context.Context, player *models.NodePlayer) error

	// Delete removes a player row.
	Delete(ctx context.Context, id string) error

	// ListByFolder lists players directly owned by a folder; nil lists
	// root-drive players.
	ListByFolder(ctx context.Context, folderID *string) ([]models.NodePlayer, error)

	// CountByPlaylist counts players assigned to a playlist (deletion
	// guard).
	CountByPlaylist(ctx context.Context, playlistID string) (int, error)
}
