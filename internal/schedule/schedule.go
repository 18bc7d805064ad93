// Package schedule compiles human-facing slide scheduling requests into the
// normalized recurrence descriptors stored on slides and consumed by the
// playback evaluator. The compiler never decides whether "now" falls inside
// a window; it only produces descriptors that round-trip through storage.
package schedule

import (
	"fmt"
	"time"

	"marquee/internal/domain"
)

// Mode tags accepted at the API boundary.
const (
	ModeLoop     = "loop"
	ModeDatetime = "datetime"
	ModeInWeek   = "inweek"
	ModeCron     = "cron"
)

// DatetimeLayout is the wire format for absolute scheduling instants.
const DatetimeLayout = "2006-01-02T15:04"

// Scheduling is the closed set of compilable scheduling variants. The
// sealed marker method keeps the union exhaustive: Compile switches over
// exactly these four types.
type Scheduling interface {
	scheduling()
}

// Loop schedules a slide unconditionally: no recurrence window at all.
type Loop struct{}

// DatetimeWindow schedules a slide between two absolute instants. End may
// be nil for an open-ended window.
type DatetimeWindow struct {
	Start time.Time
	End   *time.Time
}

// WeeklyWindow schedules a slide between two weekly recurring instants,
// each a weekday index (0 = Sunday ... 6 = Saturday) plus a time of day.
type WeeklyWindow struct {
	DayStart  int
	TimeStart TimeOfDay
	DayEnd    int
	TimeEnd   TimeOfDay
}

// CronExpression carries free-form recurrence expressions verbatim. Only
// notifications may use it; the expression is opaque to this package.
type CronExpression struct {
	Start string
	End   string
}

func (Loop) scheduling()           {}
func (DatetimeWindow) scheduling() {}
func (WeeklyWindow) scheduling()   {}
func (CronExpression) scheduling() {}

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &tod.Hour, &tod.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: malformed time of day %q", domain.ErrValidation, s)
	}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: time of day %q out of range", domain.ErrValidation, s)
	}
	return tod, nil
}

// Compile translates a scheduling variant into its start/end recurrence
// descriptors. A nil descriptor means "no boundary": Loop yields (nil, nil)
// and an open-ended DatetimeWindow yields (start, nil).
func Compile(s Scheduling) (start, end *string) {
	switch v := s.(type) {
	case Loop:
		return nil, nil
	case DatetimeWindow:
		startExpr := encodeOneShot(v.Start)
		if v.End == nil {
			return &startExpr, nil
		}
		endExpr := encodeOneShot(*v.End)
		return &startExpr, &endExpr
	case WeeklyWindow:
		startExpr := encodeWeekly(v.DayStart, v.TimeStart)
		endExpr := encodeWeekly(v.DayEnd, v.TimeEnd)
		return &startExpr, &endExpr
	case CronExpression:
		startExpr := v.Start
		if v.End == "" {
			return &startExpr, nil
		}
		endExpr := v.End
		return &startExpr, &endExpr
	default:
		// The union is sealed; a new variant must be handled above.
		panic(fmt.Sprintf("schedule: unhandled scheduling variant %T", s))
	}
}

// Request is the mode tag plus mode-specific parameters as they arrive from
// the editing surface.
type Request struct {
	Mode          string `json:"scheduling"`
	DatetimeStart string `json:"datetime_start"`
	DatetimeEnd   string `json:"datetime_end"`
	DayStart      *int   `json:"day_start"`
	TimeStart     string `json:"time_start"`
	DayEnd        *int   `json:"day_end"`
	TimeEnd       string `json:"time_end"`
	CronStart     string `json:"cron_start"`
	CronEnd       string `json:"cron_end"`
}

// Resolve validates a request against the mode vocabulary of the slide kind
// and builds the scheduling variant. Regular slides accept loop, datetime
// and inweek; notifications accept datetime and cron. An empty mode selects
// the kind's default (loop for slides, datetime for notifications).
func Resolve(req Request, isNotification bool, loc *time.Location) (Scheduling, error) {
	mode := req.Mode
	if mode == "" {
		if isNotification {
			mode = ModeDatetime
		} else {
			mode = ModeLoop
		}
	}

	switch {
	case mode == ModeLoop && !isNotification:
		return Loop{}, nil

	case mode == ModeDatetime:
		return resolveDatetime(req, loc)

	case mode == ModeInWeek && !isNotification:
		return resolveInWeek(req)

	case mode == ModeCron && isNotification:
		if req.CronStart == "" {
			return nil, fmt.Errorf("%w: cron_start is required for cron scheduling", domain.ErrScheduleParamsMissing)
		}
		return CronExpression{Start: req.CronStart, End: req.CronEnd}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSchedulingMode, mode)
	}
}

func resolveDatetime(req Request, loc *time.Location) (Scheduling, error) {
	if req.DatetimeStart == "" {
		return nil, fmt.Errorf("%w: datetime_start is required for datetime scheduling", domain.ErrScheduleParamsMissing)
	}

	start, err := time.ParseInLocation(DatetimeLayout, req.DatetimeStart, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed datetime_start %q", domain.ErrValidation, req.DatetimeStart)
	}

	window := DatetimeWindow{Start: start}
	if req.DatetimeEnd != "" {
		end, err := time.ParseInLocation(DatetimeLayout, req.DatetimeEnd, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed datetime_end %q", domain.ErrValidation, req.DatetimeEnd)
		}
		window.End = &end
	}

	return window, nil
}

func resolveInWeek(req Request) (Scheduling, error) {
	if req.DayStart == nil || req.TimeStart == "" || req.DayEnd == nil || req.TimeEnd == "" {
		return nil, fmt.Errorf("%w: day_start, time_start, day_end and time_end are required for inweek scheduling", domain.ErrScheduleParamsMissing)
	}

	dayStart, err := normalizeWeekday(*req.DayStart)
	if err != nil {
		return nil, err
	}
	dayEnd, err := normalizeWeekday(*req.DayEnd)
	if err != nil {
		return nil, err
	}

	timeStart, err := ParseTimeOfDay(req.TimeStart)
	if err != nil {
		return nil, err
	}
	timeEnd, err := ParseTimeOfDay(req.TimeEnd)
	if err != nil {
		return nil, err
	}

	return WeeklyWindow{
		DayStart:  dayStart,
		TimeStart: timeStart,
		DayEnd:    dayEnd,
		TimeEnd:   timeEnd,
	}, nil
}

// normalizeWeekday accepts 0-7 and folds 7 onto 0, both meaning Sunday.
func normalizeWeekday(day int) (int, error) {
	if day < 0 || day > 7 {
		return 0, fmt.Errorf("%w: weekday %d out of range", domain.ErrValidation, day)
	}
	if day == 7 {
		return 0, nil
	}
	return day, nil
}
