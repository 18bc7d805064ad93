package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"marquee/internal/config"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
	"marquee/internal/domain/services"
)

type contentService struct {
	contents repositories.ContentRepository
	slides   repositories.SlideRepository
	folders  services.FolderService
	logger   *slog.Logger
}

// NewContentService creates a content service. The folder service must be
// the KindContent instance; it resolves placement references.
func NewContentService(
	contents repositories.ContentRepository,
	slides repositories.SlideRepository,
	folders services.FolderService,
	logger *slog.Logger,
) services.ContentService {
	return &contentService{
		contents: contents,
		slides:   slides,
		folders:  folders,
		logger:   logger,
	}
}

func (s *contentService) CreateContent(ctx context.Context, req *services.CreateContentRequest) (*models.Content, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var folderID *string
	if req.Folder.FolderID != nil || req.Folder.Path != nil {
		_, folder, err := s.folders.ResolveContext(ctx, req.Folder)
		if err != nil {
			return nil, err
		}
		if folder != nil {
			folderID = &folder.ID
		}
	}

	now := time.Now()
	content := &models.Content{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Location:  req.Location,
		FolderID:  folderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.contents.Insert(ctx, content); err != nil {
		return nil, err
	}

	s.logger.Info("content created",
		"id", content.ID,
		"name", content.Name,
		"type", content.Type,
	)

	return content, nil
}

func (s *contentService) GetContent(ctx context.Context, id string) (*models.Content, error) {
	return s.contents.GetByID(ctx, id)
}

func (s *contentService) UpdateContent(ctx context.Context, id string, req *services.UpdateContentRequest) (*models.Content, error) {
	if req.Name == nil && req.Location == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}

	content, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validateEntityName(*req.Name); err != nil {
			return nil, err
		}
		content.Name = *req.Name
	}
	if req.Location != nil {
		content.Location = *req.Location
	}
	content.UpdatedAt = time.Now()

	if err := s.contents.Update(ctx, content); err != nil {
		return nil, err
	}

	s.logger.Info("content updated", "id", content.ID, "name", content.Name)

	return content, nil
}

// DeleteContent deletes a content item unless slides still reference it.
func (s *contentService) DeleteContent(ctx context.Context, id string) error {
	content, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.slides.CountByContent(ctx, content.ID)
	if err != nil {
		return fmt.Errorf("count slide references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: content referenced by %d slides", domain.ErrConflict, refs)
	}

	if err := s.contents.Delete(ctx, content.ID); err != nil {
		return err
	}

	s.logger.Info("content deleted", "id", content.ID, "name", content.Name)

	return nil
}

func (s *contentService) ListByFolder(ctx context.Context, folderID *string) ([]models.Content, error) {
	return s.contents.ListByFolder(ctx, folderID)
}

func (s *contentService) validateCreateRequest(req *services.CreateContentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxEntityNameLength),
		),
		validation.Field(&req.Type,
			validation.Required,
			validation.By(func(value interface{}) error {
				if t, ok := value.(models.ContentType); !ok || !t.Valid() {
					return fmt.Errorf("unknown content type")
				}
				return nil
			}),
		),
	)
}

func validateEntityName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.Length(1, config.MaxEntityNameLength),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
