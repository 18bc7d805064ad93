package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxFolderNameLength = 255

	// MaxFolderPathLength is the maximum length for full canonical folder
	// paths. Longer paths indicate overly deep hierarchies.
	MaxFolderPathLength = 500

	// MaxEntityNameLength is the maximum length for content, playlist and
	// player names. Same bound as folder names for consistency.
	MaxEntityNameLength = 255

	// MaxSlideDuration caps a slide duration in seconds. A day-long slide
	// is already a configuration mistake.
	MaxSlideDuration = 86400
)
