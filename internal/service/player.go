package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
	"marquee/internal/domain/services"
)

type playerService struct {
	players   repositories.NodePlayerRepository
	playlists repositories.PlaylistRepository
	folders   services.FolderService
	logger    *slog.Logger
}

// NewNodePlayerService creates a fleet player service. The folder service
// must be the KindNodePlayer instance.
func NewNodePlayerService(
	players repositories.NodePlayerRepository,
	playlists repositories.PlaylistRepository,
	folders services.FolderService,
	logger *slog.Logger,
) services.NodePlayerService {
	return &playerService{
		players:   players,
		playlists: playlists,
		folders:   folders,
		logger:    logger,
	}
}

func (s *playerService) RegisterPlayer(ctx context.Context, req *services.RegisterPlayerRequest) (*models.NodePlayer, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.PlaylistID != nil {
		if _, err := s.playlists.GetByID(ctx, *req.PlaylistID); err != nil {
			return nil, fmt.Errorf("resolve playlist: %w", err)
		}
	}

	var folderID *string
	if req.Folder.FolderID != nil || req.Folder.Path != nil {
		_, folder, err := s.folders.ResolveContext(ctx, req.Folder)
		if err != nil {
			return nil, err
		}
		if folder != nil {
			folderID = &folder.ID
		}
	}

	player := &models.NodePlayer{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Host:       req.Host,
		PlaylistID: req.PlaylistID,
		FolderID:   folderID,
		CreatedAt:  time.Now(),
	}

	if err := s.players.Insert(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		"id", player.ID,
		"name", player.Name,
		"host", player.Host,
	)

	return player, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id string) (*models.NodePlayer, error) {
	return s.players.GetByID(ctx, id)
}

func (s *playerService) UpdatePlayer(ctx context.Context, id string, req *services.UpdatePlayerRequest) (*models.NodePlayer, error) {
	if req.Name == nil && req.Host == nil && req.PlaylistID == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}

	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validateEntityName(*req.Name); err != nil {
			return nil, err
		}
		player.Name = *req.Name
	}
	if req.Host != nil {
		player.Host = *req.Host
	}
	if req.PlaylistID != nil {
		if *req.PlaylistID == "" {
			player.PlaylistID = nil
		} else {
			if _, err := s.playlists.GetByID(ctx, *req.PlaylistID); err != nil {
				return nil, fmt.Errorf("resolve playlist: %w", err)
			}
			player.PlaylistID = req.PlaylistID
		}
	}

	if err := s.players.Update(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player updated", "id", player.ID, "name", player.Name)

	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id string) error {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.players.Delete(ctx, player.ID); err != nil {
		return err
	}

	s.logger.Info("player deleted", "id", player.ID, "name", player.Name)

	return nil
}

func (s *playerService) ListByFolder(ctx context.Context, folderID *string) ([]models.NodePlayer, error) {
	return s.players.ListByFolder(ctx, folderID)
}

func (s *playerService) validateRegisterRequest(req *services.RegisterPlayerRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Host, validation.Required, is.Host),
	)
}
