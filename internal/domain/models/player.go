package models

import (
	"time"
)

// NodePlayer is a remote playback device registered with the fleet. Players
// live in their own folder namespace (KindNodePlayer) and may be assigned a
// playlist to render. FolderID == nil means the player sits on the root drive.
type NodePlayer struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Host       string    `json:"host" db:"host"`
	PlaylistID *string   `json:"playlist_id" db:"playlist_id"`
	FolderID   *string   `json:"folder_id" db:"folder_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
