package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// The handler layer uses it to render domain failures without a
// hard-coded switch over every sentinel.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is(). Every recoverable condition the
// core can report is a distinct, named failure; the calling layer decides
// how to present it. Storage failures are wrapped separately and are the
// only unrecoverable class.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")

	// Folder tree conditions.
	ErrPathMissing    = errors.New("neither path nor folder id supplied")
	ErrFolderNotFound = errors.New("folder not found")
	ErrDuplicatePath  = errors.New("folder path already exists")
	ErrFolderNotEmpty = errors.New("folder is not empty")
	ErrCyclicMove     = errors.New("folder cannot be moved under its own descendant")

	// Schedule compilation conditions.
	ErrScheduleParamsMissing = errors.New("required scheduling parameters missing")
	ErrInvalidSchedulingMode = errors.New("invalid scheduling mode")

	// Slide ordering conditions.
	ErrInvalidPositionPayload = errors.New("invalid position payload")

	// Playlist deletion guard, analogous to ErrFolderNotEmpty.
	ErrPlaylistNotEmpty = errors.New("playlist still has slides or player assignments")
)

// StatusCode maps a domain error to an HTTP status. Unknown errors map to
// 500 so infrastructure failures are never mistaken for caller mistakes.
func StatusCode(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode()
	}

	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrFolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrDuplicatePath),
		errors.Is(err, ErrFolderNotEmpty),
		errors.Is(err, ErrPlaylistNotEmpty),
		errors.Is(err, ErrCyclicMove):
		return http.StatusConflict
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrPathMissing),
		errors.Is(err, ErrScheduleParamsMissing),
		errors.Is(err, ErrInvalidSchedulingMode),
		errors.Is(err, ErrInvalidPositionPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
