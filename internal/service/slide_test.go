package service

import (
	"context"
	"errors"
	"testing"

	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/services"
	"marquee/internal/schedule"
)

// slideFixture creates the content and playlist a slide needs.
func slideFixture(t *testing.T, env *testEnv) (contentID, playlistID string) {
	t.Helper()
	ctx := context.Background()

	content, err := env.contents.CreateContent(ctx, &services.CreateContentRequest{
		Name:     "promo",
		Type:     models.ContentTypeURL,
		Location: "https://example.com",
	})
	if err != nil {
		t.Fatalf("CreateContent() error = %v", err)
	}

	playlist, err := env.playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{Name: "lobby loop"})
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}

	return content.ID, playlist.ID
}

func TestCreateSlideDefaults(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	slide, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  contentID,
		PlaylistID: playlistID,
	})
	if err != nil {
		t.Fatalf("CreateSlide() error = %v", err)
	}

	if !slide.Enabled {
		t.Error("new slide should default to enabled")
	}
	if slide.Duration != 3 {
		t.Errorf("duration = %d, want 3", slide.Duration)
	}
	if slide.Position != 999 {
		t.Errorf("position = %d, want 999", slide.Position)
	}
	if slide.CronSchedule != nil || slide.CronScheduleEnd != nil {
		t.Errorf("loop slide should carry no descriptors, got (%v, %v)", slide.CronSchedule, slide.CronScheduleEnd)
	}
}

func TestCreateSlideSchedules(t *testing.T) {
	tests := []struct {
		name           string
		isNotification bool
		scheduling     *schedule.Request
		wantErr        error
		wantStart      bool
		wantEnd        bool
	}{
		{
			name: "datetime window",
			scheduling: &schedule.Request{
				Mode:          schedule.ModeDatetime,
				DatetimeStart: "2026-09-01T08:00",
				DatetimeEnd:   "2026-09-30T20:00",
			},
			wantStart: true,
			wantEnd:   true,
		},
		{
			name: "open ended datetime",
			scheduling: &schedule.Request{
				Mode:          schedule.ModeDatetime,
				DatetimeStart: "2026-09-01T08:00",
			},
			wantStart: true,
		},
		{
			name: "weekly window",
			scheduling: &schedule.Request{
				Mode:      schedule.ModeInWeek,
				DayStart:  intPtr(1),
				TimeStart: "09:00",
				DayEnd:    intPtr(5),
				TimeEnd:   "18:00",
			},
			wantStart: true,
			wantEnd:   true,
		},
		{
			name: "inweek missing params",
			scheduling: &schedule.Request{
				Mode:     schedule.ModeInWeek,
				DayStart: intPtr(1),
			},
			wantErr: domain.ErrScheduleParamsMissing,
		},
		{
			name:       "cron rejected for regular slides",
			scheduling: &schedule.Request{Mode: schedule.ModeCron, CronStart: "0 9 * * 1"},
			wantErr:    domain.ErrInvalidSchedulingMode,
		},
		{
			name:           "cron accepted for notifications",
			isNotification: true,
			scheduling:     &schedule.Request{Mode: schedule.ModeCron, CronStart: "0 9 * * 1"},
			wantStart:      true,
		},
		{
			name:           "loop rejected for notifications",
			isNotification: true,
			scheduling:     &schedule.Request{Mode: schedule.ModeLoop},
			wantErr:        domain.ErrInvalidSchedulingMode,
		},
		{
			name:           "notification default mode requires datetime_start",
			isNotification: true,
			wantErr:        domain.ErrScheduleParamsMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			ctx := context.Background()
			contentID, playlistID := slideFixture(t, env)

			slide, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
				ContentID:      contentID,
				PlaylistID:     playlistID,
				IsNotification: tt.isNotification,
				Scheduling:     tt.scheduling,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateSlide() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateSlide() error = %v", err)
			}

			if (slide.CronSchedule != nil) != tt.wantStart {
				t.Errorf("cron_schedule = %v, want present=%v", slide.CronSchedule, tt.wantStart)
			}
			if (slide.CronScheduleEnd != nil) != tt.wantEnd {
				t.Errorf("cron_schedule_end = %v, want present=%v", slide.CronScheduleEnd, tt.wantEnd)
			}
		})
	}
}

func TestCreateSlideDescriptorRoundTrip(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	slide, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  contentID,
		PlaylistID: playlistID,
		Scheduling: &schedule.Request{
			Mode:      schedule.ModeInWeek,
			DayStart:  intPtr(1),
			TimeStart: "09:30",
			DayEnd:    intPtr(7), // Sunday alias, folds to 0
			TimeEnd:   "18:00",
		},
	})
	if err != nil {
		t.Fatalf("CreateSlide() error = %v", err)
	}

	day, tod, err := schedule.DecodeWeekly(*slide.CronSchedule)
	if err != nil {
		t.Fatalf("DecodeWeekly(start) error = %v", err)
	}
	if day != 1 || tod.Hour != 9 || tod.Minute != 30 {
		t.Errorf("decoded start = day %d %v, want day 1 09:30", day, tod)
	}

	day, tod, err = schedule.DecodeWeekly(*slide.CronScheduleEnd)
	if err != nil {
		t.Fatalf("DecodeWeekly(end) error = %v", err)
	}
	if day != 0 || tod.Hour != 18 || tod.Minute != 0 {
		t.Errorf("decoded end = day %d %v, want day 0 18:00", day, tod)
	}
}

func TestCreateSlideMissingReferences(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	if _, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  "00000000-0000-0000-0000-000000000000",
		PlaylistID: playlistID,
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing content: error = %v, want ErrNotFound", err)
	}

	if _, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  contentID,
		PlaylistID: "00000000-0000-0000-0000-000000000000",
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing playlist: error = %v, want ErrNotFound", err)
	}
}

func TestUpdateSlideRecompilesScheduling(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	slide, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  contentID,
		PlaylistID: playlistID,
	})
	if err != nil {
		t.Fatalf("CreateSlide() error = %v", err)
	}

	// Edit without a scheduling request keeps stored descriptors.
	updated, err := env.slides.UpdateSlide(ctx, slide.ID, &services.UpdateSlideRequest{
		Duration: intPtr(10),
	})
	if err != nil {
		t.Fatalf("UpdateSlide() error = %v", err)
	}
	if updated.Duration != 10 || updated.CronSchedule != nil {
		t.Errorf("updated = duration %d, cron %v; want 10, nil", updated.Duration, updated.CronSchedule)
	}

	// Switching to a weekly window compiles new descriptors.
	updated, err = env.slides.UpdateSlide(ctx, slide.ID, &services.UpdateSlideRequest{
		Scheduling: &schedule.Request{
			Mode:      schedule.ModeInWeek,
			DayStart:  intPtr(1),
			TimeStart: "09:00",
			DayEnd:    intPtr(5),
			TimeEnd:   "18:00",
		},
	})
	if err != nil {
		t.Fatalf("UpdateSlide() error = %v", err)
	}
	if updated.CronSchedule == nil || updated.CronScheduleEnd == nil {
		t.Fatal("weekly window should compile both descriptors")
	}

	// The vocabulary is fixed at creation: a regular slide never takes cron.
	if _, err := env.slides.UpdateSlide(ctx, slide.ID, &services.UpdateSlideRequest{
		Scheduling: &schedule.Request{Mode: schedule.ModeCron, CronStart: "0 9 * * 1"},
	}); !errors.Is(err, domain.ErrInvalidSchedulingMode) {
		t.Fatalf("cron on regular slide: error = %v, want ErrInvalidSchedulingMode", err)
	}
}

func TestUpdatePositions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	first, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID: contentID, PlaylistID: playlistID, Position: intPtr(1),
	})
	if err != nil {
		t.Fatalf("CreateSlide() error = %v", err)
	}
	second, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID: contentID, PlaylistID: playlistID, Position: intPtr(2),
	})
	if err != nil {
		t.Fatalf("CreateSlide() error = %v", err)
	}

	t.Run("empty mapping", func(t *testing.T) {
		if err := env.slides.UpdatePositions(ctx, map[string]int{}); !errors.Is(err, domain.ErrInvalidPositionPayload) {
			t.Fatalf("UpdatePositions() error = %v, want ErrInvalidPositionPayload", err)
		}
	})

	t.Run("swap order", func(t *testing.T) {
		err := env.slides.UpdatePositions(ctx, map[string]int{
			first.ID:  2,
			second.ID: 1,
		})
		if err != nil {
			t.Fatalf("UpdatePositions() error = %v", err)
		}

		slides, err := env.slides.ListByPlaylist(ctx, playlistID)
		if err != nil {
			t.Fatalf("ListByPlaylist() error = %v", err)
		}
		if len(slides) != 2 {
			t.Fatalf("len(slides) = %d, want 2", len(slides))
		}
		if slides[0].ID != second.ID || slides[1].ID != first.ID {
			t.Errorf("order = [%s %s], want [%s %s]", slides[0].ID, slides[1].ID, second.ID, first.ID)
		}
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		err := env.slides.UpdatePositions(ctx, map[string]int{
			"00000000-0000-0000-0000-000000000000": 5,
			first.ID:                               1,
		})
		if err != nil {
			t.Fatalf("UpdatePositions() error = %v", err)
		}

		got, err := env.slides.GetSlide(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetSlide() error = %v", err)
		}
		if got.Position != 1 {
			t.Errorf("position = %d, want 1", got.Position)
		}
	})
}

func TestListByPlaylistTieBreak(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	for i := 0; i < 3; i++ {
		if _, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
			ContentID: contentID, PlaylistID: playlistID, Position: intPtr(7),
		}); err != nil {
			t.Fatalf("CreateSlide() error = %v", err)
		}
	}

	slides, err := env.slides.ListByPlaylist(ctx, playlistID)
	if err != nil {
		t.Fatalf("ListByPlaylist() error = %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("len(slides) = %d, want 3", len(slides))
	}
	for i := 1; i < len(slides); i++ {
		if slides[i-1].ID > slides[i].ID {
			t.Errorf("tied positions must order by id: %s before %s", slides[i-1].ID, slides[i].ID)
		}
	}
}

func TestSlideDurationValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	contentID, playlistID := slideFixture(t, env)

	if _, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID: contentID, PlaylistID: playlistID, Duration: intPtr(-1),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("negative duration: error = %v, want ErrValidation", err)
	}

	if _, err := env.slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID: contentID, PlaylistID: playlistID, Duration: intPtr(100000),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("oversized duration: error = %v, want ErrValidation", err)
	}
}
