package services

import (
	"context"

	"marquee/internal/domain/models"
)

// PlaylistService handles playlist business logic.
type PlaylistService interface {
	// CreatePlaylist creates a playlist.
	CreatePlaylist(ctx context.Context, req *CreatePlaylistRequest) (*models.Playlist, error)

	// GetPlaylist retrieves a playlist by ID.
	GetPlaylist(ctx context.Context, id string) (*models.Playlist, error)

	// UpdatePlaylist updates a playlist's name and flags.
	UpdatePlaylist(ctx context.Context, id string, req *UpdatePlaylistRequest) (*models.Playlist, error)

	// DeletePlaylist deletes a playlist with no slides and no player
	// assignments.
	DeletePlaylist(ctx context.Context, id string) error

	// ListPlaylists retrieves every playlist.
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
}

// CreatePlaylistRequest represents a playlist creation request.
type CreatePlaylistRequest struct {
	Name     string `json:"name"`
	Enabled  *bool  `json:"enabled,omitempty"`
	TimeSync bool   `json:"time_sync"`
}

// UpdatePlaylistRequest represents a playlist update request.
type UpdatePlaylistRequest struct {
	Name     *string `json:"name,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
	TimeSync *bool   `json:"time_sync,omitempty"`
}
