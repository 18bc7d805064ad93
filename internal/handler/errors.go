package handler

import (
	"net/http"

	"marquee/internal/domain"
	"marquee/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	status := domain.StatusCode(err)
	if status == http.StatusInternalServerError {
		// Never leak internals through 500s.
		httputil.RespondError(w, status, "internal server error")
		return
	}
	httputil.RespondError(w, status, err.Error())
}
