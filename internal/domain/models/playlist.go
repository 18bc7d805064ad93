package models

import (
	"time"
)

// Playlist owns an ordered set of slides through Slide.PlaylistID. Deletion
// is blocked while slides or node-player assignments still reference it.
// TimeSync makes every player rendering the playlist start slides on the
// same wall-clock boundary.
type Playlist struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Enabled   bool      `json:"enabled" db:"enabled"`
	TimeSync  bool      `json:"time_sync" db:"time_sync"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
