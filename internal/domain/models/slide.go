package models

import (
	"time"
)

// Slide binds a content item into a playlist with a duration, a dense
// integer position and an optional compiled schedule. CronSchedule and
// CronScheduleEnd hold recurrence descriptors produced by the schedule
// compiler; both nil means the slide loops unconditionally.
//
// IsNotification is immutable after creation: it decides which scheduling
// modes an edit may use (notifications allow datetime/cron, regular slides
// allow loop/datetime/inweek).
type Slide struct {
	ID               string    `json:"id" db:"id"`
	ContentID        string    `json:"content_id" db:"content_id"`
	PlaylistID       string    `json:"playlist_id" db:"playlist_id"`
	Enabled          bool      `json:"enabled" db:"enabled"`
	DelegateDuration bool      `json:"delegate_duration" db:"delegate_duration"`
	Duration         int       `json:"duration" db:"duration"` // seconds
	Position         int       `json:"position" db:"position"`
	IsNotification   bool      `json:"is_notification" db:"is_notification"`
	CronSchedule     *string   `json:"cron_schedule" db:"cron_schedule"`
	CronScheduleEnd  *string   `json:"cron_schedule_end" db:"cron_schedule_end"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
