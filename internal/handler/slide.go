package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"marquee/internal/domain/services"
	"marquee/internal/httputil"
)

// SlideHandler handles slide and notification HTTP requests
type SlideHandler struct {
	slideService services.SlideService
	logger       *slog.Logger
}

// NewSlideHandler creates a new slide handler
func NewSlideHandler(slideService services.SlideService, logger *slog.Logger) *SlideHandler {
	return &SlideHandler{
		slideService: slideService,
		logger:       logger,
	}
}

// CreateSlide creates a regular slide
// POST /api/slides
func (h *SlideHandler) CreateSlide(w http.ResponseWriter, r *http.Request) {
	h.createSlide(w, r, false)
}

// CreateNotification creates a notification slide. The notification flag is
// fixed here forever; it is not part of the request body.
// POST /api/notifications
func (h *SlideHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	h.createSlide(w, r, true)
}

func (h *SlideHandler) createSlide(w http.ResponseWriter, r *http.Request, isNotification bool) {
	var req services.CreateSlideRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.IsNotification = isNotification

	slide, err := h.slideService.CreateSlide(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, slide)
}

// GetSlide retrieves a slide by ID
// GET /api/slides/{id}
func (h *SlideHandler) GetSlide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}

	slide, err := h.slideService.GetSlide(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, slide)
}

// UpdateSlide edits a slide
// PATCH /api/slides/{id}
func (h *SlideHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}

	var req services.UpdateSlideRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	slide, err := h.slideService.UpdateSlide(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, slide)
}

// DeleteSlide removes a slide
// DELETE /api/slides/{id}
func (h *SlideHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}

	if err := h.slideService.DeleteSlide(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdatePositions applies a bulk reposition mapping
// POST /api/slides/positions
//
// The body is a flat JSON object of slide id to integer position. Values
// are checked to be whole numbers before anything is applied: {"a": 1.5}
// is rejected as a unit, not partially applied.
func (h *SlideHandler) UpdatePositions(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.Number
	if err := httputil.ParseJSON(w, r, &raw); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid position payload")
		return
	}

	positions := make(map[string]int, len(raw))
	for id, num := range raw {
		n, err := num.Int64()
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Positions must be integers")
			return
		}
		positions[id] = int(n)
	}

	if err := h.slideService.UpdatePositions(r.Context(), positions); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
