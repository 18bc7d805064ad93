package services

import (
	"context"

	"marquee/internal/domain/models"
)

// NodePlayerService handles fleet player business logic.
type NodePlayerService interface {
	// RegisterPlayer registers a player inside a resolved folder context.
	RegisterPlayer(ctx context.Context, req *RegisterPlayerRequest) (*models.NodePlayer, error)

	// GetPlayer retrieves a player by ID.
	GetPlayer(ctx context.Context, id string) (*models.NodePlayer, error)

	// UpdatePlayer renames a player, changes its host or reassigns its
	// playlist.
	UpdatePlayer(ctx context.Context, id string, req *UpdatePlayerRequest) (*models.NodePlayer, error)

	// DeletePlayer removes a player from the fleet.
	DeletePlayer(ctx context.Context, id string) error

	// ListByFolder lists players directly owned by a folder; nil lists
	// the root drive.
	ListByFolder(ctx context.Context, folderID *string) ([]models.NodePlayer, error)
}

// RegisterPlayerRequest represents a player registration request.
type RegisterPlayerRequest struct {
	Name       string    `json:"name"`
	Host       string    `json:"host"`
	PlaylistID *string   `json:"playlist_id,omitempty"`
	Folder     FolderRef `json:"folder"`
}

// UpdatePlayerRequest represents a player update request. An empty
// PlaylistID clears the assignment; nil leaves it unchanged.
type UpdatePlayerRequest struct {
	Name       *string `json:"name,omitempty"`
	Host       *string `json:"host,omitempty"`
	PlaylistID *string `json:"playlist_id,omitempty"`
}
