package service

import (
	"context"
	"errors"
	"testing"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/services"
)

func TestCreatePlaylist(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	playlist, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{
		Name:     "lobby loop",
		TimeSync: true,
	})
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if !playlist.Enabled {
		t.Error("new playlist should default to enabled")
	}
	if !playlist.TimeSync {
		t.Error("time_sync not carried through")
	}

	if _, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{Name: ""}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name: error = %v, want ErrValidation", err)
	}
}

func TestDeletePlaylistGuard(t *testing.T) {
	t.Run("blocked by slides", func(t *testing.T) {
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

		if err := env.playlists.DeletePlaylist(ctx, playlistID); !errors.Is(err, domain.ErrPlaylistNotEmpty) {
			t.Fatalf("DeletePlaylist() error = %v, want ErrPlaylistNotEmpty", err)
		}

		if err := env.slides.DeleteSlide(ctx, slide.ID); err != nil {
			t.Fatalf("DeleteSlide() error = %v", err)
		}
		if err := env.playlists.DeletePlaylist(ctx, playlistID); err != nil {
			t.Fatalf("DeletePlaylist() after slide removal: error = %v", err)
		}
	})

	t.Run("blocked by player assignment", func(t *testing.T) {
		env := newTestEnv()
		ctx := context.Background()

		playlist, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{Name: "lobby loop"})
		if err != nil {
			t.Fatalf("CreatePlaylist() error = %v", err)
		}

		player, err := env.players.RegisterPlayer(ctx, &services.RegisterPlayerRequest{
			Name:       "lobby screen",
			Host:       "lobby-screen.local",
			PlaylistID: &playlist.ID,
		})
		if err != nil {
			t.Fatalf("RegisterPlayer() error = %v", err)
		}

		if err := env.playlists.DeletePlaylist(ctx, playlist.ID); !errors.Is(err, domain.ErrPlaylistNotEmpty) {
			t.Fatalf("DeletePlaylist() error = %v, want ErrPlaylistNotEmpty", err)
		}

		// Clearing the assignment lifts the guard.
		if _, err := env.players.UpdatePlayer(ctx, player.ID, &services.UpdatePlayerRequest{
			PlaylistID: strPtr(""),
		}); err != nil {
			t.Fatalf("UpdatePlayer() error = %v", err)
		}
		if err := env.playlists.DeletePlaylist(ctx, playlist.ID); err != nil {
			t.Fatalf("DeletePlaylist() after unassignment: error = %v", err)
		}
	})
}

func TestUpdatePlaylist(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	playlist, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{Name: "lobby loop"})
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}

	if _, err := env.playlists.UpdatePlaylist(ctx, playlist.ID, &services.UpdatePlaylistRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty update: error = %v, want ErrValidation", err)
	}

	updated, err := env.playlists.UpdatePlaylist(ctx, playlist.ID, &services.UpdatePlaylistRequest{
		Name:    strPtr("hall loop"),
		Enabled: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdatePlaylist() error = %v", err)
	}
	if updated.Name != "hall loop" || updated.Enabled {
		t.Errorf("updated = %q enabled=%v, want hall loop disabled", updated.Name, updated.Enabled)
	}
}

func TestListPlaylists(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha"} {
		if _, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{Name: name}); err != nil {
			t.Fatalf("CreatePlaylist(%s) error = %v", name, err)
		}
	}

	playlists, err := env.playlists.ListPlaylists(ctx)
	if err != nil {
		t.Fatalf("ListPlaylists() error = %v", err)
	}
	if len(playlists) != 2 || playlists[0].Name != "alpha" {
		t.Errorf("ListPlaylists() = %v, want name-ordered", playlistNames(playlists))
	}
}

func playlistNames(playlists []models.Playlist) []string {
	names := make([]string, len(playlists))
	for i, p := range playlists {
		names[i] = p.Name
	}
	return names
}
