package service

import (
	"context"
	"errors"
	"testing"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/services"
)

func TestCreateContent(t *testing.T) {
	tests := []struct {
		name    string
		req     services.CreateContentRequest
		wantErr error
	}{
		{
			name: "url content on root drive",
			req: services.CreateContentRequest{
				Name:     "promo",
				Type:     models.ContentTypeURL,
				Location: "https://example.com",
			},
		},
		{
			name: "missing name",
			req: services.CreateContentRequest{
				Type:     models.ContentTypeURL,
				Location: "https://example.com",
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "unknown type",
			req: services.CreateContentRequest{
				Name:     "promo",
				Type:     "hologram",
				Location: "https://example.com",
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "missing placement folder",
			req: services.CreateContentRequest{
				Name:     "promo",
				Type:     models.ContentTypePicture,
				Location: "/uploads/promo.png",
				Folder:   services.FolderRef{Path: strPtr("/Nowhere")},
			},
			wantErr: domain.ErrFolderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			ctx := context.Background()

			content, err := env.contents.CreateContent(ctx, &tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateContent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateContent() error = %v", err)
			}
			if content.FolderID != nil {
				t.Errorf("root drive content should have nil folder, got %v", *content.FolderID)
			}
		})
	}
}

func TestCreateContentInFolder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	folder, err := env.contentFolders.CreateFolder(ctx, &services.CreateFolderRequest{
		Name: "Ads", ParentPath: "/",
	})
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}

	content, err := env.contents.CreateContent(ctx, &services.CreateContentRequest{
		Name:     "promo",
		Type:     models.ContentTypeVideo,
		Location: "/uploads/promo.mp4",
		Folder:   services.FolderRef{Path: strPtr("/Ads")},
	})
	if err != nil {
		t.Fatalf("CreateContent() error = %v", err)
	}
	if content.FolderID == nil || *content.FolderID != folder.ID {
		t.Errorf("content folder = %v, want %s", content.FolderID, folder.ID)
	}

	listed, err := env.contents.ListByFolder(ctx, &folder.ID)
	if err != nil {
		t.Fatalf("ListByFolder() error = %v", err)
	}
	if len(listed) != 1 || listed[0].ID != content.ID {
		t.Errorf("ListByFolder() = %+v, want the created item", listed)
	}
}

func TestUpdateContent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	content, err := env.contents.CreateContent(ctx, &services.CreateContentRequest{
		Name:     "promo",
		Type:     models.ContentTypeURL,
		Location: "https://example.com",
	})
	if err != nil {
		t.Fatalf("CreateContent() error = %v", err)
	}

	if _, err := env.contents.UpdateContent(ctx, content.ID, &services.UpdateContentRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty update: error = %v, want ErrValidation", err)
	}

	updated, err := env.contents.UpdateContent(ctx, content.ID, &services.UpdateContentRequest{
		Name:     strPtr("promo v2"),
		Location: strPtr("https://example.com/v2"),
	})
	if err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}
	if updated.Name != "promo v2" || updated.Location != "https://example.com/v2" {
		t.Errorf("updated = %q %q", updated.Name, updated.Location)
	}
}

func TestDeleteContentGuard(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	slide, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  contentID,
		PlaylistID: playlistID,
	})
	if err != nil {
		t.Fatalf("CreateSlide() error = %v", err)
	}

	if err := env.contents.DeleteContent(ctx, contentID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("DeleteContent() with slide reference: error = %v, want ErrConflict", err)
	}

	if err := env.slides.DeleteSlide(ctx, slide.ID); err != nil {
		t.Fatalf("DeleteSlide() error = %v", err)
	}
	if err := env.contents.DeleteContent(ctx, contentID); err != nil {
		t.Fatalf("DeleteContent() after slide removal: error = %v", err)
	}
	if _, err := env.contents.GetContent(ctx, contentID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleted content still readable: error = %v", err)
	}
}
