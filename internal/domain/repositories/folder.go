package repositories

import (
	"context"

	"marquee/internal/domain/models"
)

// FolderRepository defines data access operations for folder rows. Every
// operation that takes a kind is scoped to that kind's namespace; callers
// never see folders of another kind through it.
type FolderRepository interface {
	// Insert creates a new folder row.
	Insert(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID within a kind.
	GetByID(ctx context.Context, id string, kind models.FolderKind) (*models.Folder, error)

	// GetByPath retrieves a folder by exact canonical path within a kind.
	// Returns (nil, nil) when no folder has that path; the root drive is
	// never a row.
	GetByPath(ctx context.Context, path string, kind models.FolderKind) (*models.Folder, error)

	// Update rewrites a folder's name, path and parent.
	Update(ctx context.Context, folder *models.Folder) error

	// UpdatePath rewrites only the materialized path of one folder. Used
	// for descendant rows during subtree renames and moves.
	UpdatePath(ctx context.Context, id, path string) error

	// Delete removes a folder row. Emptiness is the caller's precondition.
	Delete(ctx context.Context, id string) error

	// ListChildren lists direct child folders, one level only. A nil
	// parentID lists top-level folders. sortBy is a column name (name,
	// created_at); unknown values fall back to name.
	ListChildren(ctx context.Context, parentID *string, kind models.FolderKind, sortBy string, ascending bool) ([]models.Folder, error)

	// ListAll retrieves the whole kind-scoped forest as a flat list.
	ListAll(ctx context.Context, kind models.FolderKind) ([]models.Folder, error)

	// ListSubtree retrieves every folder whose path starts with
	// pathPrefix + "/", i.e. the strict descendants of a folder.
	ListSubtree(ctx context.Context, pathPrefix string, kind models.FolderKind) ([]models.Folder, error)

	// CountSubfolders counts direct child folders.
	CountSubfolders(ctx context.Context, folderID string) (int, error)
}

// PlacementRepository is the slice of an entity store the folder tree needs
// to place entities and guard folder deletion. Content and node-player
// repositories both implement it.
type PlacementRepository interface {
	// CountByFolder counts entities directly owned by a folder.
	CountByFolder(ctx context.Context, folderID string) (int, error)

	// SetFolder rewrites an entity's folder reference. nil moves the
	// entity to the root drive.
	SetFolder(ctx context.Context, entityID string, folderID *string) error
}
