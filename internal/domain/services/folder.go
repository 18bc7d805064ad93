package services

import (
	"context"

	"marquee/internal/domain/models"
)

// FolderService handles folder tree business logic for one folder kind.
// Instances are constructed bound to a kind, so the content tree and the
// node-player tree can never cross-reference each other.
type FolderService interface {
	// Kind returns the folder namespace this instance is bound to.
	Kind() models.FolderKind

	// ResolveContext resolves a caller-supplied folder reference to its
	// canonical path and folder row. The root drive resolves to
	// (pathutil.RootPath, nil): it is never materialized as a row.
	ResolveContext(ctx context.Context, ref FolderRef) (string, *models.Folder, error)

	// CreateFolder creates a folder under a parent path.
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// RenameFolder renames a folder in place and rewrites the
	// materialized paths of every descendant.
	RenameFolder(ctx context.Context, folderID, newName string) (*models.Folder, error)

	// MoveFolder reparents a folder; nil target means the root drive.
	// Moving a folder beneath itself or its own descendant is rejected.
	MoveFolder(ctx context.Context, folderID string, targetFolderID *string) (*models.Folder, error)

	// MoveEntities rewrites the folder reference of placeable entities;
	// nil target means the root drive.
	MoveEntities(ctx context.Context, entityIDs []string, targetFolderID *string) error

	// DeleteFolder deletes a folder that owns no entities and no
	// subfolders.
	DeleteFolder(ctx context.Context, folderID string) error

	// Tree returns the whole kind-scoped forest for hierarchical
	// rendering.
	Tree(ctx context.Context) ([]*models.FolderTreeNode, error)

	// ListChildren lists direct child folders, one level only.
	ListChildren(ctx context.Context, parentID *string, sortBy string, ascending bool) ([]models.Folder, error)
}

// FolderRef is a caller-supplied folder reference: a folder id, a path, or
// neither (which ResolveContext rejects). When both are set the id wins,
// matching the editing surface's working-directory semantics.
type FolderRef struct {
	FolderID *string `json:"folder_id,omitempty"`
	Path     *string `json:"path,omitempty"`
}

// CreateFolderRequest represents a folder creation request.
type CreateFolderRequest struct {
	Name       string `json:"name"`
	ParentPath string `json:"path"` // root drive when empty
}
