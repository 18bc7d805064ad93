package memory

import (
	"context"
	"fmt"
	"sort"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
)

type slideRepo struct {
	store *Store
}

func (r *slideRepo) Insert(_ context.Context, slide *models.Slide) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.slides[slide.ID] = *slide
	return nil
}

func (r *slideRepo) GetByID(_ context.Context, id string) (*models.Slide, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slide, ok := r.store.slides[id]
	if !ok {
		return nil, fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
	}
	return &slide, nil
}

func (r *slideRepo) Update(_ context.Context, slide *models.Slide) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.slides[slide.ID]
	if !ok {
		return fmt.Errorf("slide %s: %w", slide.ID, domain.ErrNotFound)
	}
	// IsNotification is immutable after creation.
	updated := *slide
	updated.IsNotification = existing.IsNotification
	r.store.slides[slide.ID] = updated
	return nil
}

func (r *slideRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.slides[id]; !ok {
		return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.slides, id)
	return nil
}

func (r *slideRepo) ListByPlaylist(_ context.Context, playlistID string) ([]models.Slide, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var slides []models.Slide
	for _, slide := range r.store.slides {
		if slide.PlaylistID == playlistID {
			slides = append(slides, slide)
		}
	}

	sort.Slice(slides, func(i, j int) bool {
		if slides[i].Position != slides[j].Position {
			return slides[i].Position < slides[j].Position
		}
		return slides[i].ID < slides[j].ID
	})

	return slides, nil
}

func (r *slideRepo) UpdatePosition(_ context.Context, id string, position int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slide, ok := r.store.slides[id]
	if !ok {
		// Unknown ids are a no-op; see the repository contract.
		return nil
	}
	slide.Position = position
	r.store.slides[id] = slide
	return nil
}

func (r *slideRepo) CountByContent(_ context.Context, contentID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, slide := range r.store.slides {
		if slide.ContentID == contentID {
			count++
		}
	}
	return count, nil
}

func (r *slideRepo) CountByPlaylist(_ context.Context, playlistID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, slide := range r.store.slides {
		if slide.PlaylistID == playlistID {
			count++
		}
	}
	return count, nil
}
