package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"marquee/internal/config"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
	"marquee/internal/domain/services"
	"marquee/internal/pathutil"
)

var folderNamePattern = regexp.MustCompile(`^[^/]+$`)

type folderService struct {
	kind       models.FolderKind
	folders    repositories.FolderRepository
	placements repositories.PlacementRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewFolderService creates a folder service bound to one folder kind. The
// placement repository must belong to the same kind's entities: it supplies
// the owned-entity count for the deletion guard and the folder_id rewrite
// for entity moves.
func NewFolderService(
	kind models.FolderKind,
	folders repositories.FolderRepository,
	placements repositories.PlacementRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		kind:       kind,
		folders:    folders,
		placements: placements,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *folderService) Kind() models.FolderKind {
	return s.kind
}

// ResolveContext resolves a folder id or path to (canonical path, folder).
// The root drive resolves to (pathutil.RootPath, nil) since root is never a
// row.
func (s *folderService) ResolveContext(ctx context.Context, ref services.FolderRef) (string, *models.Folder, error) {
	if ref.FolderID != nil && *ref.FolderID != "" {
		folder, err := s.folders.GetByID(ctx, *ref.FolderID, s.kind)
		if err != nil {
			return "", nil, err
		}
		return folder.Path, folder, nil
	}

	if ref.Path == nil {
		return "", nil, domain.ErrPathMissing
	}

	path := pathutil.Normalize(*ref.Path)
	if pathutil.IsRootDrive(path) {
		return pathutil.RootPath, nil, nil
	}

	folder, err := s.folders.GetByPath(ctx, path, s.kind)
	if err != nil {
		return "", nil, fmt.Errorf("resolve folder path: %w", err)
	}
	if folder == nil {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, path)
	}

	return folder.Path, folder, nil
}

// CreateFolder creates a folder under a parent path.
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if err := validateFolderName(req.Name); err != nil {
		return nil, err
	}

	parentPath := pathutil.Normalize(req.ParentPath)

	var parentID *string
	if !pathutil.IsRootDrive(parentPath) {
		parent, err := s.folders.GetByPath(ctx, parentPath, s.kind)
		if err != nil {
			return nil, fmt.Errorf("resolve parent folder: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, parentPath)
		}
		parentID = &parent.ID
	}

	path := pathutil.Join(parentPath, req.Name)
	if len(path) > config.MaxFolderPathLength {
		return nil, fmt.Errorf("%w: folder path exceeds %d characters", domain.ErrValidation, config.MaxFolderPathLength)
	}

	existing, err := s.folders.GetByPath(ctx, path, s.kind)
	if err != nil {
		return nil, fmt.Errorf("check folder path: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePath, path)
	}

	folder := &models.Folder{
		ID:        uuid.NewString(),
		Kind:      s.kind,
		Name:      req.Name,
		Path:      path,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}

	if err := s.folders.Insert(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"kind", s.kind,
		"path", folder.Path,
	)

	return folder, nil
}

// RenameFolder renames a folder in place. Paths are eagerly materialized,
// so every descendant path is rewritten in the same transaction, prefix
// replacement in parent-to-child order.
func (s *folderService) RenameFolder(ctx context.Context, folderID, newName string) (*models.Folder, error) {
	if err := validateFolderName(newName); err != nil {
		return nil, err
	}

	folder, err := s.folders.GetByID(ctx, folderID, s.kind)
	if err != nil {
		return nil, err
	}

	newPath := pathutil.Join(pathutil.Dir(folder.Path), newName)
	if newPath == folder.Path {
		return folder, nil
	}

	if err := s.checkPathFree(ctx, newPath); err != nil {
		return nil, err
	}

	oldPath := folder.Path
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder.Name = newName
		folder.Path = newPath
		if err := s.folders.Update(txCtx, folder); err != nil {
			return err
		}
		return s.rewriteSubtreePaths(txCtx, oldPath, newPath)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed",
		"id", folder.ID,
		"kind", s.kind,
		"old_path", oldPath,
		"new_path", newPath,
	)

	return folder, nil
}

// MoveFolder reparents a folder. A move under the folder itself or any of
// its descendants would orphan the subtree, so it is rejected before any
// write.
func (s *folderService) MoveFolder(ctx context.Context, folderID string, targetFolderID *string) (*models.Folder, error) {
	folder, err := s.folders.GetByID(ctx, folderID, s.kind)
	if err != nil {
		return nil, err
	}

	targetPath := pathutil.RootPath
	var parentID *string

	if targetFolderID != nil {
		target, err := s.folders.GetByID(ctx, *targetFolderID, s.kind)
		if err != nil {
			return nil, err
		}
		// Materialized paths make the ancestor check a prefix test.
		if target.ID == folder.ID || strings.HasPrefix(target.Path+pathutil.Separator, folder.Path+pathutil.Separator) {
			return nil, fmt.Errorf("%w: %s into %s", domain.ErrCyclicMove, folder.Path, target.Path)
		}
		targetPath = target.Path
		parentID = &target.ID
	}

	newPath := pathutil.Join(targetPath, folder.Name)
	if newPath == folder.Path {
		return folder, nil
	}

	if err := s.checkPathFree(ctx, newPath); err != nil {
		return nil, err
	}

	oldPath := folder.Path
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder.ParentID = parentID
		folder.Path = newPath
		if err := s.folders.Update(txCtx, folder); err != nil {
			return err
		}
		return s.rewriteSubtreePaths(txCtx, oldPath, newPath)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder moved",
		"id", folder.ID,
		"kind", s.kind,
		"old_path", oldPath,
		"new_path", newPath,
	)

	return folder, nil
}

// MoveEntities rewrites the folder reference of placeable entities in one
// batch.
func (s *folderService) MoveEntities(ctx context.Context, entityIDs []string, targetFolderID *string) error {
	if len(entityIDs) == 0 {
		return fmt.Errorf("%w: no entity ids", domain.ErrValidation)
	}

	if targetFolderID != nil {
		if _, err := s.folders.GetByID(ctx, *targetFolderID, s.kind); err != nil {
			return err
		}
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		for _, id := range entityIDs {
			if err := s.placements.SetFolder(txCtx, id, targetFolderID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("entities moved",
		"kind", s.kind,
		"count", len(entityIDs),
	)

	return nil
}

// DeleteFolder deletes an empty folder. Emptiness is a precondition, not a
// side effect: nothing cascades.
func (s *folderService) DeleteFolder(ctx context.Context, folderID string) error {
	folder, err := s.folders.GetByID(ctx, folderID, s.kind)
	if err != nil {
		return err
	}

	entityCount, err := s.placements.CountByFolder(ctx, folder.ID)
	if err != nil {
		return fmt.Errorf("count folder entities: %w", err)
	}
	subfolderCount, err := s.folders.CountSubfolders(ctx, folder.ID)
	if err != nil {
		return fmt.Errorf("count subfolders: %w", err)
	}
	if entityCount > 0 || subfolderCount > 0 {
		return fmt.Errorf("%w: %s owns %d entities and %d subfolders",
			domain.ErrFolderNotEmpty, folder.Path, entityCount, subfolderCount)
	}

	if err := s.folders.Delete(ctx, folder.ID); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"id", folder.ID,
		"kind", s.kind,
		"path", folder.Path,
	)

	return nil
}

// Tree assembles the kind-scoped forest as parent-to-children adjacency.
func (s *folderService) Tree(ctx context.Context) ([]*models.FolderTreeNode, error) {
	folders, err := s.folders.ListAll(ctx, s.kind)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*models.FolderTreeNode, len(folders))
	for _, folder := range folders {
		nodes[folder.ID] = &models.FolderTreeNode{
			ID:        folder.ID,
			Name:      folder.Name,
			Path:      folder.Path,
			ParentID:  folder.ParentID,
			CreatedAt: folder.CreatedAt,
			Folders:   []*models.FolderTreeNode{},
		}
	}

	roots := make([]*models.FolderTreeNode, 0)
	for _, folder := range folders {
		node := nodes[folder.ID]
		if folder.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*folder.ParentID]; ok {
			parent.Folders = append(parent.Folders, node)
		}
	}

	return roots, nil
}

func (s *folderService) ListChildren(ctx context.Context, parentID *string, sortBy string, ascending bool) ([]models.Folder, error) {
	return s.folders.ListChildren(ctx, parentID, s.kind, sortBy, ascending)
}

// rewriteSubtreePaths replaces the oldPath prefix of every strict
// descendant with newPath. Descendant paths are derived from their stored
// values, so rewrite order does not matter within the transaction.
func (s *folderService) rewriteSubtreePaths(ctx context.Context, oldPath, newPath string) error {
	descendants, err := s.folders.ListSubtree(ctx, oldPath, s.kind)
	if err != nil {
		return fmt.Errorf("list subtree: %w", err)
	}

	for _, desc := range descendants {
		rewritten := newPath + strings.TrimPrefix(desc.Path, oldPath)
		if err := s.folders.UpdatePath(ctx, desc.ID, rewritten); err != nil {
			return fmt.Errorf("rewrite descendant path %s: %w", desc.Path, err)
		}
	}

	return nil
}

func (s *folderService) checkPathFree(ctx context.Context, path string) error {
	existing, err := s.folders.GetByPath(ctx, path, s.kind)
	if err != nil {
		return fmt.Errorf("check folder path: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePath, path)
	}
	return nil
}

func validateFolderName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.Length(1, config.MaxFolderNameLength),
		validation.Match(folderNamePattern).Error("folder name cannot contain slashes"),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
