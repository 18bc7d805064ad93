package handler

import (
	"log/slog"
	"net/http"

	"marquee/internal/domain/services"
	"marquee/internal/httputil"
)

// PlaylistHandler handles playlist HTTP requests
type PlaylistHandler struct {
	playlistService services.PlaylistService
	slideService    services.SlideService
	logger          *slog.Logger
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(playlistService services.PlaylistService, slideService services.SlideService, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
		slideService:    slideService,
		logger:          logger,
	}
}

// CreatePlaylist creates a new playlist
// POST /api/playlists
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePlaylistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, playlist)
}

// GetPlaylist retrieves a playlist by ID
// GET /api/playlists/{id}
func (h *PlaylistHandler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Playlist ID is required")
		return
	}

	playlist, err := h.playlistService.GetPlaylist(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, playlist)
}

// UpdatePlaylist updates a playlist
// PATCH /api/playlists/{id}
func (h *PlaylistHandler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Playlist ID is required")
		return
	}

	var req services.UpdatePlaylistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	playlist, err := h.playlistService.UpdatePlaylist(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, playlist)
}

// DeletePlaylist deletes a playlist (must own no slides or assignments)
// DELETE /api/playlists/{id}
func (h *PlaylistHandler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Playlist ID is required")
		return
	}

	if err := h.playlistService.DeletePlaylist(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPlaylists lists all playlists
// GET /api/playlists
func (h *PlaylistHandler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistService.ListPlaylists(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, playlists)
}

// ListSlides lists a playlist's slides in playback order
// GET /api/playlists/{id}/slides
func (h *PlaylistHandler) ListSlides(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Playlist ID is required")
		return
	}

	// 404 for unknown playlists rather than an empty list.
	if _, err := h.playlistService.GetPlaylist(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	slides, err := h.slideService.ListByPlaylist(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, slides)
}
