package services

import (
	"context"

	"marquee/internal/domain/models"
)

// ContentService handles content item business logic.
type ContentService interface {
	// CreateContent creates a content item inside a resolved folder
	// context.
	CreateContent(ctx context.Context, req *CreateContentRequest) (*models.Content, error)

	// GetContent retrieves a content item by ID.
	GetContent(ctx context.Context, id string) (*models.Content, error)

	// UpdateContent renames a content item or changes its location.
	UpdateContent(ctx context.Context, id string, req *UpdateContentRequest) (*models.Content, error)

	// DeleteContent deletes a content item not referenced by any slide.
	DeleteContent(ctx context.Context, id string) error

	// ListByFolder lists content directly owned by a folder; nil lists
	// the root drive.
	ListByFolder(ctx context.Context, folderID *string) ([]models.Content, error)
}

// CreateContentRequest represents a content creation request. Folder names
// the placement via a FolderRef; an absent ref places the item on the root
// drive.
type CreateContentRequest struct {
	Name     string             `json:"name"`
	Type     models.ContentType `json:"type"`
	Location string             `json:"location"`
	Folder   FolderRef          `json:"folder"`
}

// UpdateContentRequest represents a content update request.
type UpdateContentRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}
