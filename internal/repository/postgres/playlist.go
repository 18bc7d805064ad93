package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
)

// PostgresPlaylistRepository implements the PlaylistRepository interface
type PostgresPlaylistRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(config *RepositoryConfig) repositories.PlaylistRepository {
	return &PostgresPlaylistRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Insert creates a new playlist row
func (r *PostgresPlaylistRepository) Insert(ctx context.Context, playlist *models.Playlist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, enabled, time_sync, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Playlists)

	_, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		playlist.ID,
		playlist.Name,
		playlist.Enabled,
		playlist.TimeSync,
		playlist.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert playlist: %w", err)
	}

	return nil
}

// GetByID retrieves a playlist by ID
func (r *PostgresPlaylistRepository) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	query := fmt.Sprintf(`
		SELECT id, name, enabled, time_sync, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Playlists)

	var playlist models.Playlist
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.Enabled,
		&playlist.TimeSync,
		&playlist.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("playlist %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get playlist: %w", err)
	}

	return &playlist, nil
}

// Update rewrites a playlist's mutable fields
func (r *PostgresPlaylistRepository) Update(ctx context.Context, playlist *models.Playlist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, enabled = $2, time_sync = $3
		WHERE id = $4
	`, r.tables.Playlists)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		playlist.Name,
		playlist.Enabled,
		playlist.TimeSync,
		playlist.ID,
	)

	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s: %w", playlist.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a playlist row
func (r *PostgresPlaylistRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Playlists)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("playlist still referenced: %w", domain.ErrPlaylistNotEmpty)
		}
		return fmt.Errorf("delete playlist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves every playlist ordered by name
func (r *PostgresPlaylistRepository) ListAll(ctx context.Context) ([]models.Playlist, error) {
	query := fmt.Sprintf(`
		SELECT id, name, enabled, time_sync, created_at
		FROM %s
		ORDER BY name ASC
	`, r.tables.Playlists)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var playlist models.Playlist
		err := rows.Scan(
			&playlist.ID,
			&playlist.Name,
			&playlist.Enabled,
			&playlist.TimeSync,
			&playlist.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	return playlists, nil
}
