package handler

import (
	"log/slog"
	"net/http"

	"marquee/internal/domain/services"
	"marquee/internal/httputil"
)

// FolderHandler handles folder tree HTTP requests for one folder kind. The
// server mounts one instance per namespace (content, players) under its own
// route prefix.
type FolderHandler struct {
	folderService services.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService services.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// CreateFolder creates a new folder
// POST {prefix}/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// updateFolderRequest carries a rename, a move, or both. target_folder_id
// is tri-state: absent keeps the parent, null moves to the root drive, a
// value moves under that folder.
type updateFolderRequest struct {
	Name           *string                 `json:"name,omitempty"`
	TargetFolderID httputil.OptionalString `json:"target_folder_id"`
}

// UpdateFolder renames and/or moves a folder
// PATCH {prefix}/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	var req updateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == nil && !req.TargetFolderID.Present {
		httputil.RespondError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	if req.Name != nil {
		if _, err := h.folderService.RenameFolder(r.Context(), id, *req.Name); err != nil {
			handleError(w, err)
			return
		}
	}
	if req.TargetFolderID.Present {
		if _, err := h.folderService.MoveFolder(r.Context(), id, req.TargetFolderID.Value); err != nil {
			handleError(w, err)
			return
		}
	}

	_, folder, err := h.folderService.ResolveContext(r.Context(), services.FolderRef{FolderID: &id})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder deletes a folder (must be empty)
// DELETE {prefix}/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	if err := h.folderService.DeleteFolder(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTree returns the whole folder forest for this namespace
// GET {prefix}/folders/tree
func (h *FolderHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.folderService.Tree(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// ListChildren lists direct child folders
// GET {prefix}/folders?parent_id=&sort=&order=
func (h *FolderHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	var parentID *string
	if v := r.URL.Query().Get("parent_id"); v != "" {
		parentID = &v
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = "name"
	}
	ascending := r.URL.Query().Get("order") != "desc"

	folders, err := h.folderService.ListChildren(r.Context(), parentID, sortBy, ascending)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// moveEntitiesRequest names the entities to re-place. A null or absent
// target_folder_id moves them to the root drive.
type moveEntitiesRequest struct {
	EntityIDs      []string                `json:"entity_ids"`
	TargetFolderID httputil.OptionalString `json:"target_folder_id"`
}

// MoveEntities re-places entities of this namespace in one batch
// POST {prefix}/folders/entities/move
func (h *FolderHandler) MoveEntities(w http.ResponseWriter, r *http.Request) {
	var req moveEntitiesRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.folderService.MoveEntities(r.Context(), req.EntityIDs, req.TargetFolderID.Value); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
