package memory

import (
	"context"
	"fmt"
	"sort"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
)

type playlistRepo struct {
	store *Store
}

func (r *playlistRepo) Insert(_ context.Context, playlist *models.Playlist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.playlists[playlist.ID] = *playlist
	return nil
}

func (r *playlistRepo) GetByID(_ context.Context, id string) (*models.Playlist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	playlist, ok := r.store.playlists[id]
	if !ok {
		return nil, fmt.Errorf("playlist %s: %w", id, domain.ErrNotFound)
	}
	return &playlist, nil
}

func (r *playlistRepo) Update(_ context.Context, playlist *models.Playlist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.playlists[playlist.ID]; !ok {
		return fmt.Errorf("playlist %s: %w", playlist.ID, domain.ErrNotFound)
	}
	r.store.playlists[playlist.ID] = *playlist
	return nil
}

func (r *playlistRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.playlists[id]; !ok {
		return fmt.Errorf("playlist %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.playlists, id)
	return nil
}

func (r *playlistRepo) ListAll(_ context.Context) ([]models.Playlist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	playlists := make([]models.Playlist, 0, len(r.store.playlists))
	for _, playlist := range r.store.playlists {
		playlists = append(playlists, playlist)
	}

	sort.Slice(playlists, func(i, j int) bool {
		return playlists[i].Name < playlists[j].Name
	})

	return playlists, nil
}
