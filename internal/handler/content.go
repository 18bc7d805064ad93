package handler

import (
	"log/slog"
	"net/http"

	"marquee/internal/domain/services"
	"marquee/internal/httputil"
)

// ContentHandler handles content HTTP requests
type ContentHandler struct {
	contentService services.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService services.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// CreateContent creates a new content item
// POST /api/contents
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req services.CreateContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content, err := h.contentService.CreateContent(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, content)
}

// GetContent retrieves a content item by ID
// GET /api/contents/{id}
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	content, err := h.contentService.GetContent(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, content)
}

// UpdateContent updates a content item
// PATCH /api/contents/{id}
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	var req services.UpdateContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content, err := h.contentService.UpdateContent(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, content)
}

// DeleteContent deletes a content item
// DELETE /api/contents/{id}
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	if err := h.contentService.DeleteContent(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListContent lists content in a folder; no folder_id lists the root drive
// GET /api/contents?folder_id=
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	var folderID *string
	if v := r.URL.Query().Get("folder_id"); v != "" {
		folderID = &v
	}

	contents, err := h.contentService.ListByFolder(r.Context(), folderID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contents)
}
