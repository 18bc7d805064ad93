package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
)

// PostgresContentRepository implements the ContentRepository interface
type PostgresContentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewContentRepository creates a new content repository
func NewContentRepository(config *RepositoryConfig) repositories.ContentRepository {
	return &PostgresContentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Insert creates a new content row
func (r *PostgresContentRepository) Insert(ctx context.Context, content *models.Content) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, type, location, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Contents)

	_, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		content.ID,
		content.Name,
		content.Type,
		content.Location,
		content.FolderID,
		content.CreatedAt,
		content.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert content: %w", err)
	}

	return nil
}

// GetByID retrieves a content item by ID
func (r *PostgresContentRepository) GetByID(ctx context.Context, id string) (*models.Content, error) {
	query := fmt.Sprintf(`
		SELECT id, name, type, location, folder_id, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Contents)

	var content models.Content
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&content.ID,
		&content.Name,
		&content.Type,
		&content.Location,
		&content.FolderID,
		&content.CreatedAt,
		&content.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get content: %w", err)
	}

	return &content, nil
}

// Update rewrites a content item's mutable fields
func (r *PostgresContentRepository) Update(ctx context.Context, content *models.Content) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, type = $2, location = $3, folder_id = $4, updated_at = $5
		WHERE id = $6
	`, r.tables.Contents)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		content.Name,
		content.Type,
		content.Location,
		content.FolderID,
		content.UpdatedAt,
		content.ID,
	)

	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("content %s: %w", content.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a content row
func (r *PostgresContentRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Contents)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("content still referenced by slides: %w", domain.ErrConflict)
		}
		return fmt.Errorf("delete content: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByFolder lists content directly owned by a folder; nil lists
// root-drive content
func (r *PostgresContentRepository) ListByFolder(ctx context.Context, folderID *string) ([]models.Content, error) {
	var query string
	var args []interface{}

	if folderID == nil {
		query = fmt.Sprintf(`
			SELECT id, name, type, location, folder_id, created_at, updated_at
			FROM %s
			WHERE folder_id IS NULL
			ORDER BY name ASC
		`, r.tables.Contents)
	} else {
		query = fmt.Sprintf(`
			SELECT id, name, type, location, folder_id, created_at, updated_at
			FROM %s
			WHERE folder_id = $1
			ORDER BY name ASC
		`, r.tables.Contents)
		args = append(args, *folderID)
	}

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	var contents []models.Content
	for rows.Next() {
		var content models.Content
		err := rows.Scan(
			&content.ID,
			&content.Name,
			&content.Type,
			&content.Location,
			&content.FolderID,
			&content.CreatedAt,
			&content.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		contents = append(contents, content)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content: %w", err)
	}

	return contents, nil
}

// CountByFolder counts content directly owned by a folder
func (r *PostgresContentRepository) CountByFolder(ctx context.Context, folderID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE folder_id = $1
	`, r.tables.Contents)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, folderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count content by folder: %w", err)
	}

	return count, nil
}

// SetFolder rewrites a content item's folder reference
func (r *PostgresContentRepository) SetFolder(ctx context.Context, entityID string, folderID *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1
		WHERE id = $2
	`, r.tables.Contents)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, folderID, entityID)
	if err != nil {
		return fmt.Errorf("set content folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("content %s: %w", entityID, domain.ErrNotFound)
	}

	return nil
}
