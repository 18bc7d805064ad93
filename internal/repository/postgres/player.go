package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
)

// PostgresPlayerRepository implements the NodePlayerRepository interface
type PostgresPlayerRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPlayerRepository creates a new node-player repository
func NewPlayerRepository(config *RepositoryConfig) repositories.NodePlayerRepository {
	return &PostgresPlayerRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Insert creates a new player row
func (r *PostgresPlayerRepository) Insert(ctx context.Context, player *models.NodePlayer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, host, playlist_id, folder_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Players)

	_, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		player.ID,
		player.Name,
		player.Host,
		player.PlaylistID,
		player.FolderID,
		player.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

// GetByID retrieves a player by ID
func (r *PostgresPlayerRepository) GetByID(ctx context.Context, id string) (*models.NodePlayer, error) {
	query := fmt.Sprintf(`
		SELECT id, name, host, playlist_id, folder_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Players)

	var player models.NodePlayer
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&player.ID,
		&player.Name,
		&player.Host,
		&player.PlaylistID,
		&player.FolderID,
		&player.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("player %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get player: %w", err)
	}

	return &player, nil
}

// Update rewrites a player's mutable fields
func (r *PostgresPlayerRepository) Update(ctx context.Context, player *models.NodePlayer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, host = $2, playlist_id = $3, folder_id = $4
		WHERE id = $5
	`, r.tables.Players)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		player.Name,
		player.Host,
		player.PlaylistID,
		player.FolderID,
		player.ID,
	)

	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %s: %w", player.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a player row
func (r *PostgresPlayerRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Players)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByFolder lists players directly owned by a folder; nil lists
// root-drive players
func (r *PostgresPlayerRepository) ListByFolder(ctx context.Context, folderID *string) ([]models.NodePlayer, error) {
	var query string
	var args []interface{}

	if folderID == nil {
		query = fmt.Sprintf(`
			SELECT id, name, host, playlist_id, folder_id, created_at
			FROM %s
			WHERE folder_id IS NULL
			ORDER BY name ASC
		`, r.tables.Players)
	} else {
		query = fmt.Sprintf(`
			SELECT id, name, host, playlist_id, folder_id, created_at
			FROM %s
			WHERE folder_id = $1
			ORDER BY name ASC
		`, r.tables.Players)
		args = append(args, *folderID)
	}

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []models.NodePlayer
	for rows.Next() {
		var player models.NodePlayer
		err := rows.Scan(
			&player.ID,
			&player.Name,
			&player.Host,
			&player.PlaylistID,
			&player.FolderID,
			&player.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	return players, nil
}

// CountByFolder counts players directly owned by a folder
func (r *PostgresPlayerRepository) CountByFolder(ctx context.Context, folderID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE folder_id = $1
	`, r.tables.Players)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, folderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count players by folder: %w", err)
	}

	return count, nil
}

// SetFolder rewrites a player's folder reference
func (r *PostgresPlayerRepository) SetFolder(ctx context.Context, entityID string, folderID *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1
		WHERE id = $2
	`, r.tables.Players)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, folderID, entityID)
	if err != nil {
		return fmt.Errorf("set player folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %s: %w", entityID, domain.ErrNotFound)
	}

	return nil
}

// CountByPlaylist counts players assigned to a playlist
func (r *PostgresPlayerRepository) CountByPlaylist(ctx context.Context, playlistID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE playlist_id = $1
	`, r.tables.Players)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, playlistID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count players by playlist: %w", err)
	}

	return count, nil
}
