package memory

import (
	"context"
	"fmt"
	"sort"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
)

type contentRepo struct {
	store *Store
}

func (r *contentRepo) Insert(_ context.Context, content *models.Content) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.contents[content.ID] = *content
	return nil
}

func (r *contentRepo) GetByID(_ context.Context, id string) (*models.Content, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	content, ok := r.store.contents[id]
	if !ok {
		return nil, fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
	}
	return &content, nil
}

func (r *contentRepo) Update(_ context.Context, content *models.Content) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.contents[content.ID]; !ok {
		return fmt.Errorf("content %s: %w", content.ID, domain.ErrNotFound)
	}
	r.store.contents[content.ID] = *content
	return nil
}

func (r *contentRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.contents[id]; !ok {
		return fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.contents, id)
	return nil
}

func (r *contentRepo) ListByFolder(_ context.Context, folderID *string) ([]models.Content, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var contents []models.Content
	for _, content := range r.store.contents {
		if sameFolder(content.FolderID, folderID) {
			contents = append(contents, content)
		}
	}

	sort.Slice(contents, func(i, j int) bool {
		return contents[i].Name < contents[j].Name
	})

	return contents, nil
}

func (r *contentRepo) CountByFolder(_ context.Context, folderID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, content := range r.store.contents {
		if content.FolderID != nil && *content.FolderID == folderID {
			count++
		}
	}
	return count, nil
}

func (r *contentRepo) SetFolder(_ context.Context, entityID string, folderID *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	content, ok := r.store.contents[entityID]
	if !ok {
		return fmt.Errorf("content %s: %w", entityID, domain.ErrNotFound)
	}
	content.FolderID = folderID
	r.store.contents[entityID] = content
	return nil
}

func sameFolder(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
