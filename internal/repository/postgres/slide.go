package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
)

// PostgresSlideRepository implements the SlideRepository interface
type PostgresSlideRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSlideRepository creates a new slide repository
func NewSlideRepository(config *RepositoryConfig) repositories.SlideRepository {
	return &PostgresSlideRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Insert creates a new slide row
func (r *PostgresSlideRepository) Insert(ctx context.Context, slide *models.Slide) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, content_id, playlist_id, enabled, delegate_duration,
			duration, position, is_notification, cron_schedule, cron_schedule_end,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, r.tables.Slides)

	_, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		slide.ID,
		slide.ContentID,
		slide.PlaylistID,
		slide.Enabled,
		slide.DelegateDuration,
		slide.Duration,
		slide.Position,
		slide.IsNotification,
		slide.CronSchedule,
		slide.CronScheduleEnd,
		slide.CreatedAt,
		slide.UpdatedAt,
	)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("slide references missing content or playlist: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert slide: %w", err)
	}

	return nil
}

// GetByID retrieves a slide by ID
func (r *PostgresSlideRepository) GetByID(ctx context.Context, id string) (*models.Slide, error) {
	query := fmt.Sprintf(`
		SELECT id, content_id, playlist_id, enabled, delegate_duration,
			duration, position, is_notification, cron_schedule, cron_schedule_end,
			created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Slides)

	var slide models.Slide
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&slide.ID,
		&slide.ContentID,
		&slide.PlaylistID,
		&slide.Enabled,
		&slide.DelegateDuration,
		&slide.Duration,
		&slide.Position,
		&slide.IsNotification,
		&slide.CronSchedule,
		&slide.CronScheduleEnd,
		&slide.CreatedAt,
		&slide.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get slide: %w", err)
	}

	return &slide, nil
}

// Update rewrites a slide's mutable fields. IsNotification is deliberately
// not in the SET list.
func (r *PostgresSlideRepository) Update(ctx context.Context, slide *models.Slide) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content_id = $1, playlist_id = $2, enabled = $3, delegate_duration = $4,
			duration = $5, position = $6, cron_schedule = $7, cron_schedule_end = $8,
			updated_at = $9
		WHERE id = $10
	`, r.tables.Slides)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		slide.ContentID,
		slide.PlaylistID,
		slide.Enabled,
		slide.DelegateDuration,
		slide.Duration,
		slide.Position,
		slide.CronSchedule,
		slide.CronScheduleEnd,
		slide.UpdatedAt,
		slide.ID,
	)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("slide references missing content or playlist: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("update slide: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slide %s: %w", slide.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a slide row
func (r *PostgresSlideRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Slides)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByPlaylist lists a playlist's slides ordered by (position, id)
func (r *PostgresSlideRepository) ListByPlaylist(ctx context.Context, playlistID string) ([]models.Slide, error) {
	query := fmt.Sprintf(`
		SELECT id, content_id, playlist_id, enabled, delegate_duration,
			duration, position, is_notification, cron_schedule, cron_schedule_end,
			created_at, updated_at
		FROM %s
		WHERE playlist_id = $1
		ORDER BY position ASC, id ASC
	`, r.tables.Slides)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	var slides []models.Slide
	for rows.Next() {
		var slide models.Slide
		err := rows.Scan(
			&slide.ID,
			&slide.ContentID,
			&slide.PlaylistID,
			&slide.Enabled,
			&slide.DelegateDuration,
			&slide.Duration,
			&slide.Position,
			&slide.IsNotification,
			&slide.CronSchedule,
			&slide.CronScheduleEnd,
			&slide.CreatedAt,
			&slide.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		slides = append(slides, slide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slides: %w", err)
	}

	return slides, nil
}

// UpdatePosition rewrites one slide's position. Zero rows affected is not
// an error: bulk repositions tolerate slides deleted concurrently.
func (r *PostgresSlideRepository) UpdatePosition(ctx context.Context, id string, position int) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET position = $1
		WHERE id = $2
	`, r.tables.Slides)

	if _, err := GetExecutor(ctx, r.pool).Exec(ctx, query, position, id); err != nil {
		return fmt.Errorf("update slide position: %w", err)
	}

	return nil
}

// CountByContent counts slides referencing a content item
func (r *PostgresSlideRepository) CountByContent(ctx context.Context, contentID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE content_id = $1
	`, r.tables.Slides)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, contentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slides by content: %w", err)
	}

	return count, nil
}

// CountByPlaylist counts slides owned by a playlist
func (r *PostgresSlideRepository) CountByPlaylist(ctx context.Context, playlistID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE playlist_id = $1
	`, r.tables.Slides)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, playlistID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slides by playlist: %w", err)
	}

	return count, nil
}
