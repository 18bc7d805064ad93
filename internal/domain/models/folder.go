package models

import (
	"time"
)

// FolderKind partitions the shared folder tree into independent namespaces.
// Folders of different kinds never see each other: every query is scoped by
// kind the same way every query is scoped by tenant in a multi-tenant store.
type FolderKind string

const (
	KindContent    FolderKind = "content"
	KindNodePlayer FolderKind = "node_player"
)

// Valid reports whether k is a member of the closed kind set.
func (k FolderKind) Valid() bool {
	return k == KindContent || k == KindNodePlayer
}

// Folder is a node of a virtual folder tree. Path is canonical and eagerly
// materialized: it always equals parent.Path + "/" + Name, and every rename
// or move rewrites the paths of the whole subtree. The root drive is never
// stored as a row; top-level folders have ParentID == nil.
type Folder struct {
	ID        string     `json:"id" db:"id"`
	Kind      FolderKind `json:"kind" db:"kind"`
	Name      string     `json:"name" db:"name"`
	Path      string     `json:"path" db:"path"`
	ParentID  *string    `json:"parent_id" db:"parent_id"` // NULL = top level
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// FolderTreeNode is a folder with its nested children, for hierarchical
// rendering of a whole kind-scoped forest.
type FolderTreeNode struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Path      string            `json:"path"`
	ParentID  *string           `json:"parent_id"`
	CreatedAt time.Time         `json:"created_at"`
	Folders   []*FolderTreeNode `json:"folders"`
}
