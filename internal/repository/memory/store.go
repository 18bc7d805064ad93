// Package memory implements the storage port on plain maps. It backs the
// service test suites; semantics mirror the postgres implementation,
// including the (nil, nil) "absent" contract of GetByPath.
package memory

import (
	"context"
	"sync"

	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
)

// Store holds every entity map behind one mutex. A single lock is enough:
// the store exists for tests, not for scale.
type Store struct {
	mu        sync.RWMutex
	folders   map[string]models.Folder
	contents  map[string]models.Content
	players   map[string]models.NodePlayer
	slides    map[string]models.Slide
	playlists map[string]models.Playlist
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		folders:   make(map[string]models.Folder),
		contents:  make(map[string]models.Content),
		players:   make(map[string]models.NodePlayer),
		slides:    make(map[string]models.Slide),
		playlists: make(map[string]models.Playlist),
	}
}

// ExecTx satisfies repositories.TransactionManager. Every individual
// operation already runs under the store mutex, so the batch reduces to
// running the function; a mid-batch failure leaves earlier writes applied,
// the same as any storage layer without transactions.
func (s *Store) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// Folders returns the folder repository view of the store.
func (s *Store) Folders() repositories.FolderRepository { return &folderRepo{s} }

// Contents returns the content repository view of the store.
func (s *Store) Contents() repositories.ContentRepository { return &contentRepo{s} }

// Players returns the node-player repository view of the store.
func (s *Store) Players() repositories.NodePlayerRepository { return &playerRepo{s} }

// Slides returns the slide repository view of the store.
func (s *Store) Slides() repositories.SlideRepository { return &slideRepo{s} }

// Playlists returns the playlist repository view of the store.
func (s *Store) Playlists() repositories.PlaylistRepository { return &playlistRepo{s} }
