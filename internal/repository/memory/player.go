package memory

import (
	"context"
	"fmt"
	"sort"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
)

type playerRepo struct {
	store *Store
}

func (r *playerRepo) Insert(_ context.Context, player *models.NodePlayer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.players[player.ID] = *player
	return nil
}

func (r *playerRepo) GetByID(_ context.Context, id string) (*models.NodePlayer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	player, ok := r.store.players[id]
	if !ok {
		return nil, fmt.Errorf("player %s: %w", id, domain.ErrNotFound)
	}
	return &player, nil
}

func (r *playerRepo) Update(_ context.Context, player *models.NodePlayer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[player.ID]; !ok {
		return fmt.Errorf("player %s: %w", player.ID, domain.ErrNotFound)
	}
	r.store.players[player.ID] = *player
	return nil
}

func (r *playerRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[id]; !ok {
		return fmt.Errorf("player %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.players, id)
	return nil
}

func (r *playerRepo) ListByFolder(_ context.Context, folderID *string) ([]models.NodePlayer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var players []models.NodePlayer
	for _, player := range r.store.players {
		if sameFolder(player.FolderID, folderID) {
			players = append(players, player)
		}
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})

	return players, nil
}

func (r *playerRepo) CountByFolder(_ context.Context, folderID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, player := range r.store.players {
		if player.FolderID != nil && *player.FolderID == folderID {
			count++
		}
	}
	return count, nil
}

func (r *playerRepo) SetFolder(_ context.Context, entityID string, folderID *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	player, ok := r.store.players[entityID]
	if !ok {
		return fmt.Errorf("player %s: %w", entityID, domain.ErrNotFound)
	}
	player.FolderID = folderID
	r.store.players[entityID] = player
	return nil
}

func (r *playerRepo) CountByPlaylist(_ context.Context, playlistID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, player := range r.store.players {
		if player.PlaylistID != nil && *player.PlaylistID == playlistID {
			count++
		}
	}
	return count, nil
}
