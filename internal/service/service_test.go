package service

import (
	"io"
	"log/slog"
	"time"

	"marquee/internal/domain/models"
	"marquee/internal/domain/services"
	"marquee/internal/repository/memory"
)

// testEnv wires every service against one in-memory store, the same shape
// cmd/server assembles against postgres.
type testEnv struct {
	store          *memory.Store
	contentFolders services.FolderService
	playerFolders  services.FolderService
	contents       services.ContentService
	players        services.NodePlayerService
	slides         services.SlideService
	playlists      services.PlaylistService
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	contentFolders := NewFolderService(models.KindContent, store.Folders(), store.Contents(), store, logger)
	playerFolders := NewFolderService(models.KindNodePlayer, store.Folders(), store.Players(), store, logger)

	return &testEnv{
		store:          store,
		contentFolders: contentFolders,
		playerFolders:  playerFolders,
		contents:       NewContentService(store.Contents(), store.Slides(), contentFolders, logger),
		players:        NewNodePlayerService(store.Players(), store.Playlists(), playerFolders, logger),
		slides:         NewSlideService(store.Slides(), store.Contents(), store.Playlists(), store, time.UTC, logger),
		playlists:      NewPlaylistService(store.Playlists(), store.Slides(), store.Players(), logger),
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
