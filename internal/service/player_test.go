package service

import (
	"context"
	"errors"
	"testing"

	"marquee/internal/domain"
	"marquee/internal/domain/services"
)

func TestRegisterPlayer(t *testing.T) {
	tests := []struct {
		name    string
		req     services.RegisterPlayerRequest
		wantErr error
	}{
		{
			name: "hostname",
			req:  services.RegisterPlayerRequest{Name: "lobby screen", Host: "lobby-screen.local"},
		},
		{
			name: "ip address",
			req:  services.RegisterPlayerRequest{Name: "hall screen", Host: "192.168.1.20"},
		},
		{
			name:    "missing host",
			req:     services.RegisterPlayerRequest{Name: "lobby screen"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing name",
			req:     services.RegisterPlayerRequest{Host: "lobby-screen.local"},
			wantErr: domain.ErrValidation,
		},
		{
			name: "unknown playlist",
			req: services.RegisterPlayerRequest{
				Name:       "lobby screen",
				Host:       "lobby-screen.local",
				PlaylistID: strPtr("00000000-0000-0000-0000-000000000000"),
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			ctx := context.Background()

			player, err := env.players.RegisterPlayer(ctx, &tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RegisterPlayer() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RegisterPlayer() error = %v", err)
			}
			if player.Host != tt.req.Host {
				t.Errorf("host = %q, want %q", player.Host, tt.req.Host)
			}
		})
	}
}

func TestRegisterPlayerInFolder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	folder, err := env.playerFolders.CreateFolder(ctx, &services.CreateFolderRequest{
		Name: "Ground Floor", ParentPath: "/",
	})
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}

	player, err := env.players.RegisterPlayer(ctx, &services.RegisterPlayerRequest{
		Name:   "lobby screen",
		Host:   "lobby-screen.local",
		Folder: services.FolderRef{Path: strPtr("/Ground Floor")},
	})
	if err != nil {
		t.Fatalf("RegisterPlayer() error = %v", err)
	}
	if player.FolderID == nil || *player.FolderID != folder.ID {
		t.Errorf("player folder = %v, want %s", player.FolderID, folder.ID)
	}

	// The content namespace must not satisfy a player placement.
	if _, err := env.contentFolders.CreateFolder(ctx, &services.CreateFolderRequest{
		Name: "First Floor", ParentPath: "/",
	}); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if _, err := env.players.RegisterPlayer(ctx, &services.RegisterPlayerRequest{
		Name:   "hall screen",
		Host:   "hall-screen.local",
		Folder: services.FolderRef{Path: strPtr("/First Floor")},
	}); !errors.Is(err, domain.ErrFolderNotFound) {
		t.Fatalf("cross-namespace placement: error = %v, want ErrFolderNotFound", err)
	}
}

func TestUpdatePlayerPlaylistAssignment(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	playlist, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{Name: "lobby loop"})
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	player, err := env.players.RegisterPlayer(ctx, &services.RegisterPlayerRequest{
		Name: "lobby screen", Host: "lobby-screen.local",
	})
	if err != nil {
		t.Fatalf("RegisterPlayer() error = %v", err)
	}

	updated, err := env.players.UpdatePlayer(ctx, player.ID, &services.UpdatePlayerRequest{
		PlaylistID: &playlist.ID,
	})
	if err != nil {
		t.Fatalf("UpdatePlayer() error = %v", err)
	}
	if updated.PlaylistID == nil || *updated.PlaylistID != playlist.ID {
		t.Errorf("playlist = %v, want %s", updated.PlaylistID, playlist.ID)
	}

	// Empty string clears the assignment.
	updated, err = env.players.UpdatePlayer(ctx, player.ID, &services.UpdatePlayerRequest{
		PlaylistID: strPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdatePlayer() error = %v", err)
	}
	if updated.PlaylistID != nil {
		t.Errorf("playlist = %v, want nil after clearing", updated.PlaylistID)
	}
}
