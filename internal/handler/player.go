package handler

import (
	"log/slog"
	"net/http"

	"marquee/internal/domain/services"
	"marquee/internal/httputil"
)

// PlayerHandler handles fleet player HTTP requests
type PlayerHandler struct {
	playerService services.NodePlayerService
	logger        *slog.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService services.NodePlayerService, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		logger:        logger,
	}
}

// RegisterPlayer registers a player with the fleet
// POST /api/players
func (h *PlayerHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterPlayerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := h.playerService.RegisterPlayer(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, player)
}

// GetPlayer retrieves a player by ID
// GET /api/players/{id}
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, player)
}

// UpdatePlayer updates a player
// PATCH /api/players/{id}
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	var req services.UpdatePlayerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, player)
}

// DeletePlayer removes a player from the fleet
// DELETE /api/players/{id}
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPlayers lists players in a folder; no folder_id lists the root drive
// GET /api/players?folder_id=
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	var folderID *string
	if v := r.URL.Query().Get("folder_id"); v != "" {
		folderID = &v
	}

	players, err := h.playerService.ListByFolder(r.Context(), folderID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, players)
}
