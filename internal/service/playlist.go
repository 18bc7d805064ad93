package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
	"marquee/internal/domain/services"
)

type playlistService struct {
	playlists repositories.PlaylistRepository
	slides    repositories.SlideRepository
	players   repositories.NodePlayerRepository
	logger    *slog.Logger
}

// NewPlaylistService creates a playlist service.
func NewPlaylistService(
	playlists repositories.PlaylistRepository,
	slides repositories.SlideRepository,
	players repositories.NodePlayerRepository,
	logger *slog.Logger,
) services.PlaylistService {
	return &playlistService{
		playlists: playlists,
		slides:    slides,
		players:   players,
		logger:    logger,
	}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, req *services.CreatePlaylistRequest) (*models.Playlist, error) {
	if err := validateEntityName(req.Name); err != nil {
		return nil, err
	}

	playlist := &models.Playlist{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Enabled:   true,
		TimeSync:  req.TimeSync,
		CreatedAt: time.Now(),
	}
	if req.Enabled != nil {
		playlist.Enabled = *req.Enabled
	}

	if err := s.playlists.Insert(ctx, playlist); err != nil {
		return nil, err
	}

	s.logger.Info("playlist created", "id", playlist.ID, "name", playlist.Name)

	return playlist, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, id string) (*models.Playlist, error) {
	return s.playlists.GetByID(ctx, id)
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, id string, req *services.UpdatePlaylistRequest) (*models.Playlist, error) {
	if req.Name == nil && req.Enabled == nil && req.TimeSync == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}

	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validateEntityName(*req.Name); err != nil {
			return nil, err
		}
		playlist.Name = *req.Name
	}
	if req.Enabled != nil {
		playlist.Enabled = *req.Enabled
	}
	if req.TimeSync != nil {
		playlist.TimeSync = *req.TimeSync
	}

	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, err
	}

	s.logger.Info("playlist updated", "id", playlist.ID, "name", playlist.Name)

	return playlist, nil
}

// DeletePlaylist deletes a playlist unless slides or player assignments
// still reference it, the same guard shape folders use.
func (s *playlistService) DeletePlaylist(ctx context.Context, id string) error {
	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		return err
	}

	slideCount, err := s.slides.CountByPlaylist(ctx, playlist.ID)
	if err != nil {
		return fmt.Errorf("count playlist slides: %w", err)
	}
	playerCount, err := s.players.CountByPlaylist(ctx, playlist.ID)
	if err != nil {
		return fmt.Errorf("count playlist players: %w", err)
	}
	if slideCount > 0 || playerCount > 0 {
		return fmt.Errorf("%w: %d slides, %d player assignments",
			domain.ErrPlaylistNotEmpty, slideCount, playerCount)
	}

	if err := s.playlists.Delete(ctx, playlist.ID); err != nil {
		return err
	}

	s.logger.Info("playlist deleted", "id", playlist.ID, "name", playlist.Name)

	return nil
}

func (s *playlistService) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return s.playlists.ListAll(ctx)
}
