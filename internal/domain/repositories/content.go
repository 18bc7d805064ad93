package repositories

import (
	"context"

	"marquee/internal/domain/models"
)

// ContentRepository defines data access operations for content items.
type ContentRepository interface {
	PlacementRepository

	// Insert creates a new content row.
	Insert(ctx context.Context, content *models.Content) error

	// GetByID retrieves a content item by ID.
	GetByID(ctx context.Context, id string) (*models.Content, error)

	// Update rewrites a content item's mutable fields.
	Update(ctx context.Context, content *models.Content) error

	// Delete removes a content row.
	Delete(ctx context.Context, id string) error

	// ListByFolder lists content directly owned by a folder; nil lists
	// root-drive content.
	ListByFolder(ctx context.Context, folderID *string) ([]models.Content, error)
}
