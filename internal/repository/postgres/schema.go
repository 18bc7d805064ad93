package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes if they don't exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, tablePrefix string) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}

	createFolders := `
		CREATE TABLE IF NOT EXISTS ` + tables.Folders + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			parent_id UUID REFERENCES ` + tables.Folders + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE(kind, path)
		)
	`
	if _, err := pool.Exec(ctx, createFolders); err != nil {
		return fmt.Errorf("create folders table: %w", err)
	}

	createContents := `
		CREATE TABLE IF NOT EXISTS ` + tables.Contents + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			location TEXT NOT NULL,
			folder_id UUID REFERENCES ` + tables.Folders + `(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createContents); err != nil {
		return fmt.Errorf("create contents table: %w", err)
	}

	createPlaylists := `
		CREATE TABLE IF NOT EXISTS ` + tables.Playlists + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			time_sync BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createPlaylists); err != nil {
		return fmt.Errorf("create playlists table: %w", err)
	}

	createPlayers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Players + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			host TEXT NOT NULL,
			playlist_id UUID REFERENCES ` + tables.Playlists + `(id),
			folder_id UUID REFERENCES ` + tables.Folders + `(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createPlayers); err != nil {
		return fmt.Errorf("create players table: %w", err)
	}

	createSlides := `
		CREATE TABLE IF NOT EXISTS ` + tables.Slides + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			content_id UUID NOT NULL REFERENCES ` + tables.Contents + `(id),
			playlist_id UUID NOT NULL REFERENCES ` + tables.Playlists + `(id),
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			delegate_duration BOOLEAN NOT NULL DEFAULT FALSE,
			duration INTEGER NOT NULL DEFAULT 3,
			position INTEGER NOT NULL DEFAULT 999,
			is_notification BOOLEAN NOT NULL DEFAULT FALSE,
			cron_schedule TEXT,
			cron_schedule_end TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createSlides); err != nil {
		return fmt.Errorf("create slides table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_kind_parent ON ` + tables.Folders + `(kind, parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_kind_path ON ` + tables.Folders + `(kind, path)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `contents_folder ON ` + tables.Contents + `(folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `players_folder ON ` + tables.Players + `(folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `players_playlist ON ` + tables.Players + `(playlist_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `slides_playlist_position ON ` + tables.Slides + `(playlist_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `slides_content ON ` + tables.Slides + `(content_id)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// DropTables drops all tables in reverse dependency order
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	tableNames := []string{
		tables.Slides,
		tables.Players,
		tables.Playlists,
		tables.Contents,
		tables.Folders,
	}

	for _, table := range tableNames {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}

	return nil
}
