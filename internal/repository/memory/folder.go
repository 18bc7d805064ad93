package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/pathutil"
)

type folderRepo struct {
	store *Store
}

func (r *folderRepo) Insert(_ context.Context, folder *models.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.folders {
		if existing.Kind == folder.Kind && existing.Path == folder.Path {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePath, folder.Path)
		}
	}

	r.store.folders[folder.ID] = *folder
	return nil
}

func (r *folderRepo) GetByID(_ context.Context, id string, kind models.FolderKind) (*models.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	folder, ok := r.store.folders[id]
	if !ok || folder.Kind != kind {
		return nil, fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, id)
	}
	return &folder, nil
}

func (r *folderRepo) GetByPath(_ context.Context, path string, kind models.FolderKind) (*models.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, folder := range r.store.folders {
		if folder.Kind == kind && folder.Path == path {
			f := folder
			return &f, nil
		}
	}
	return nil, nil
}

func (r *folderRepo) Update(_ context.Context, folder *models.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.folders[folder.ID]; !ok {
		return fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, folder.ID)
	}
	r.store.folders[folder.ID] = *folder
	return nil
}

func (r *folderRepo) UpdatePath(_ context.Context, id, path string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	folder, ok := r.store.folders[id]
	if !ok {
		return fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, id)
	}
	folder.Path = path
	folder.Name = pathutil.Base(path)
	r.store.folders[id] = folder
	return nil
}

func (r *folderRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.folders[id]; !ok {
		return fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, id)
	}
	delete(r.store.folders, id)
	return nil
}

func (r *folderRepo) ListChildren(_ context.Context, parentID *string, kind models.FolderKind, sortBy string, ascending bool) ([]models.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var children []models.Folder
	for _, folder := range r.store.folders {
		if folder.Kind != kind {
			continue
		}
		switch {
		case parentID == nil && folder.ParentID == nil:
			children = append(children, folder)
		case parentID != nil && folder.ParentID != nil && *folder.ParentID == *parentID:
			children = append(children, folder)
		}
	}

	sort.Slice(children, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "created_at":
			less = children[i].CreatedAt.Before(children[j].CreatedAt)
		default:
			less = children[i].Name < children[j].Name
		}
		if !ascending {
			return !less
		}
		return less
	})

	return children, nil
}

func (r *folderRepo) ListAll(_ context.Context, kind models.FolderKind) ([]models.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var folders []models.Folder
	for _, folder := range r.store.folders {
		if folder.Kind == kind {
			folders = append(folders, folder)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Path < folders[j].Path
	})

	return folders, nil
}

func (r *folderRepo) ListSubtree(_ context.Context, pathPrefix string, kind models.FolderKind) ([]models.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	prefix := pathPrefix + pathutil.Separator
	var folders []models.Folder
	for _, folder := range r.store.folders {
		if folder.Kind == kind && strings.HasPrefix(folder.Path, prefix) {
			folders = append(folders, folder)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Path < folders[j].Path
	})

	return folders, nil
}

func (r *folderRepo) CountSubfolders(_ context.Context, folderID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, folder := range r.store.folders {
		if folder.ParentID != nil && *folder.ParentID == folderID {
			count++
		}
	}
	return count, nil
}
