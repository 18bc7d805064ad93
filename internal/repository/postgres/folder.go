package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
	"marquee/internal/pathutil"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Insert creates a new folder row
func (r *PostgresFolderRepository) Insert(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, kind, name, path, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Folders)

	_, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		folder.ID,
		folder.Kind,
		folder.Name,
		folder.Path,
		folder.ParentID,
		folder.CreatedAt,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePath, folder.Path)
		}
		return fmt.Errorf("insert folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID within a kind
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string, kind models.FolderKind) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, kind, name, path, parent_id, created_at
		FROM %s
		WHERE id = $1 AND kind = $2
	`, r.tables.Folders)

	var folder models.Folder
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, kind).Scan(
		&folder.ID,
		&folder.Kind,
		&folder.Name,
		&folder.Path,
		&folder.ParentID,
		&folder.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, id)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// GetByPath retrieves a folder by exact canonical path within a kind.
// Returns (nil, nil) when no folder has that path.
func (r *PostgresFolderRepository) GetByPath(ctx context.Context, path string, kind models.FolderKind) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, kind, name, path, parent_id, created_at
		FROM %s
		WHERE path = $1 AND kind = $2
	`, r.tables.Folders)

	var folder models.Folder
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, path, kind).Scan(
		&folder.ID,
		&folder.Kind,
		&folder.Name,
		&folder.Path,
		&folder.ParentID,
		&folder.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get folder by path: %w", err)
	}

	return &folder, nil
}

// Update rewrites a folder's name, path and parent
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, path = $2, parent_id = $3
		WHERE id = $4
	`, r.tables.Folders)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		folder.Name,
		folder.Path,
		folder.ParentID,
		folder.ID,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePath, folder.Path)
		}
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, folder.ID)
	}

	return nil
}

// UpdatePath rewrites the materialized path (and the name derived from it)
// of one folder row
func (r *PostgresFolderRepository) UpdatePath(ctx context.Context, id, path string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET path = $1, name = $2
		WHERE id = $3
	`, r.tables.Folders)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, path, pathutil.Base(path), id)
	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePath, path)
		}
		return fmt.Errorf("update folder path: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, id)
	}

	return nil
}

// Delete removes a folder row
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("folder still referenced: %w", domain.ErrFolderNotEmpty)
		}
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrFolderNotFound, id)
	}

	return nil
}

// ListChildren lists direct child folders, one level only
func (r *PostgresFolderRepository) ListChildren(ctx context.Context, parentID *string, kind models.FolderKind, sortBy string, ascending bool) ([]models.Folder, error) {
	// sortBy is interpolated; restrict it to known columns.
	column := "name"
	if sortBy == "created_at" {
		column = "created_at"
	}
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}

	var query string
	var args []interface{}

	if parentID == nil {
		query = fmt.Sprintf(`
			SELECT id, kind, name, path, parent_id, created_at
			FROM %s
			WHERE kind = $1 AND parent_id IS NULL
			ORDER BY %s %s
		`, r.tables.Folders, column, direction)
		args = append(args, kind)
	} else {
		query = fmt.Sprintf(`
			SELECT id, kind, name, path, parent_id, created_at
			FROM %s
			WHERE kind = $1 AND parent_id = $2
			ORDER BY %s %s
		`, r.tables.Folders, column, direction)
		args = append(args, kind, *parentID)
	}

	return r.queryFolders(ctx, query, args...)
}

// ListAll retrieves the whole kind-scoped forest as a flat list
func (r *PostgresFolderRepository) ListAll(ctx context.Context, kind models.FolderKind) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, kind, name, path, parent_id, created_at
		FROM %s
		WHERE kind = $1
		ORDER BY path ASC
	`, r.tables.Folders)

	return r.queryFolders(ctx, query, kind)
}

// ListSubtree retrieves the strict descendants of the folder at pathPrefix
func (r *PostgresFolderRepository) ListSubtree(ctx context.Context, pathPrefix string, kind models.FolderKind) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, kind, name, path, parent_id, created_at
		FROM %s
		WHERE kind = $1 AND path LIKE $2
		ORDER BY path ASC
	`, r.tables.Folders)

	pattern := likeEscape(pathPrefix+pathutil.Separator) + "%"
	return r.queryFolders(ctx, query, kind, pattern)
}

// CountSubfolders counts direct child folders
func (r *PostgresFolderRepository) CountSubfolders(ctx context.Context, folderID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE parent_id = $1
	`, r.tables.Folders)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, folderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count subfolders: %w", err)
	}

	return count, nil
}

// likeEscape escapes LIKE metacharacters so folder names containing % or _
// match literally.
func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *PostgresFolderRepository) queryFolders(ctx context.Context, query string, args ...interface{}) ([]models.Folder, error) {
	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.Kind,
			&folder.Name,
			&folder.Path,
			&folder.ParentID,
			&folder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}
