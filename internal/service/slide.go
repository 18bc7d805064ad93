package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"marquee/internal/config"
	"marquee/internal/domain"
	"marquee/internal/domain/models"
	"marquee/internal/domain/repositories"
	"marquee/internal/domain/services"
	"marquee/internal/schedule"
)

// defaultSlidePosition appends new slides after every dense position in
// use, matching the editing surface's behavior.
const defaultSlidePosition = 999

type slideService struct {
	slides    repositories.SlideRepository
	contents  repositories.ContentRepository
	playlists repositories.PlaylistRepository
	txManager repositories.TransactionManager
	location  *time.Location
	logger    *slog.Logger
}

// NewSlideService creates a slide service. location interprets the absolute
// scheduling instants operators enter.
func NewSlideService(
	slides repositories.SlideRepository,
	contents repositories.ContentRepository,
	playlists repositories.PlaylistRepository,
	txManager repositories.TransactionManager,
	location *time.Location,
	logger *slog.Logger,
) services.SlideService {
	return &slideService{
		slides:    slides,
		contents:  contents,
		playlists: playlists,
		txManager: txManager,
		location:  location,
		logger:    logger,
	}
}

func (s *slideService) CreateSlide(ctx context.Context, req *services.CreateSlideRequest) (*models.Slide, error) {
	if req.ContentID == "" {
		return nil, fmt.Errorf("%w: content_id is required", domain.ErrValidation)
	}
	if req.PlaylistID == "" {
		return nil, fmt.Errorf("%w: playlist_id is required", domain.ErrValidation)
	}

	if _, err := s.contents.GetByID(ctx, req.ContentID); err != nil {
		return nil, fmt.Errorf("resolve content: %w", err)
	}
	if _, err := s.playlists.GetByID(ctx, req.PlaylistID); err != nil {
		return nil, fmt.Errorf("resolve playlist: %w", err)
	}

	cronStart, cronEnd, err := s.compileScheduling(req.Scheduling, req.IsNotification)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	slide := &models.Slide{
		ID:               uuid.NewString(),
		ContentID:        req.ContentID,
		PlaylistID:       req.PlaylistID,
		Enabled:          true,
		DelegateDuration: req.DelegateDuration,
		Duration:         3,
		Position:         defaultSlidePosition,
		IsNotification:   req.IsNotification,
		CronSchedule:     cronStart,
		CronScheduleEnd:  cronEnd,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.Enabled != nil {
		slide.Enabled = *req.Enabled
	}
	if req.Duration != nil {
		slide.Duration = *req.Duration
	}
	if req.Position != nil {
		slide.Position = *req.Position
	}

	if err := validateSlideDuration(slide.Duration); err != nil {
		return nil, err
	}

	if err := s.slides.Insert(ctx, slide); err != nil {
		return nil, err
	}

	s.logger.Info("slide created",
		"id", slide.ID,
		"playlist_id", slide.PlaylistID,
		"notification", slide.IsNotification,
	)

	return slide, nil
}

func (s *slideService) GetSlide(ctx context.Context, id string) (*models.Slide, error) {
	return s.slides.GetByID(ctx, id)
}

// UpdateSlide edits a slide. A present scheduling request is recompiled
// under the slide's original notification vocabulary - IsNotification is
// immutable, so the vocabulary can never drift after creation.
func (s *slideService) UpdateSlide(ctx context.Context, id string, req *services.UpdateSlideRequest) (*models.Slide, error) {
	slide, err := s.slides.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ContentID != nil {
		if _, err := s.contents.GetByID(ctx, *req.ContentID); err != nil {
			return nil, fmt.Errorf("resolve content: %w", err)
		}
		slide.ContentID = *req.ContentID
	}
	if req.Enabled != nil {
		slide.Enabled = *req.Enabled
	}
	if req.DelegateDuration != nil {
		slide.DelegateDuration = *req.DelegateDuration
	}
	if req.Duration != nil {
		if err := validateSlideDuration(*req.Duration); err != nil {
			return nil, err
		}
		slide.Duration = *req.Duration
	}
	if req.Position != nil {
		slide.Position = *req.Position
	}

	if req.Scheduling != nil {
		cronStart, cronEnd, err := s.compileScheduling(req.Scheduling, slide.IsNotification)
		if err != nil {
			return nil, err
		}
		slide.CronSchedule = cronStart
		slide.CronScheduleEnd = cronEnd
	}

	slide.UpdatedAt = time.Now()

	if err := s.slides.Update(ctx, slide); err != nil {
		return nil, err
	}

	s.logger.Info("slide updated", "id", slide.ID)

	return slide, nil
}

func (s *slideService) DeleteSlide(ctx context.Context, id string) error {
	slide, err := s.slides.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.slides.Delete(ctx, slide.ID); err != nil {
		return err
	}

	s.logger.Info("slide deleted", "id", slide.ID)

	return nil
}

func (s *slideService) ListByPlaylist(ctx context.Context, playlistID string) ([]models.Slide, error) {
	return s.slides.ListByPlaylist(ctx, playlistID)
}

// UpdatePositions applies a bulk reposition mapping as one batch. Position
// ties are allowed; reads break them by slide id, so the resulting order is
// stable without a uniqueness constraint.
func (s *slideService) UpdatePositions(ctx context.Context, positions map[string]int) error {
	if len(positions) == 0 {
		return fmt.Errorf("%w: empty mapping", domain.ErrInvalidPositionPayload)
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		for id, position := range positions {
			if err := s.slides.UpdatePosition(txCtx, id, position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("slide positions updated", "count", len(positions))

	return nil
}

// compileScheduling resolves and compiles a scheduling request. A nil
// request selects the vocabulary default: loop for slides, datetime for
// notifications (which then requires datetime_start).
func (s *slideService) compileScheduling(req *schedule.Request, isNotification bool) (*string, *string, error) {
	r := schedule.Request{}
	if req != nil {
		r = *req
	}

	sched, err := schedule.Resolve(r, isNotification, s.location)
	if err != nil {
		return nil, nil, err
	}

	start, end := schedule.Compile(sched)
	return start, end, nil
}

func validateSlideDuration(duration int) error {
	if duration < 0 || duration > config.MaxSlideDuration {
		return fmt.Errorf("%w: duration %d out of range", domain.ErrValidation, duration)
	}
	return nil
}
