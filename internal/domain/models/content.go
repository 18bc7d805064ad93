package models

import (
	"time"
)

// ContentType is the closed set of displayable content types.
type ContentType string

const (
	ContentTypeURL     ContentType = "url"
	ContentTypePicture ContentType = "picture"
	ContentTypeVideo   ContentType = "video"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeURL, ContentTypePicture, ContentTypeVideo:
		return true
	}
	return false
}

// Content is a displayable item placed in the content folder tree.
// FolderID == nil means the item sits on the root drive.
type Content struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Type      ContentType `json:"type" db:"type"`
	Location  string      `json:"location" db:"location"`
	FolderID  *string     `json:"folder_id" db:"folder_id"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
