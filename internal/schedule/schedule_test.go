package schedule

import (
	"errors"
	"testing"
	"time"

	"marquee/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestResolveSlideModes(t *testing.T) {
	tests := []struct {
		name           string
		req            Request
		isNotification bool
		wantErr        error
		wantType       string
	}{
		{
			name:     "empty mode defaults to loop for slides",
			req:      Request{},
			wantType: "loop",
		},
		{
			name:     "explicit loop",
			req:      Request{Mode: ModeLoop},
			wantType: "loop",
		},
		{
			name:     "datetime with start only",
			req:      Request{Mode: ModeDatetime, DatetimeStart: "2024-03-01T08:30"},
			wantType: "datetime",
		},
		{
			name:    "datetime without start",
			req:     Request{Mode: ModeDatetime},
			wantErr: domain.ErrScheduleParamsMissing,
		},
		{
			name: "inweek with all four params",
			req: Request{
				Mode:     ModeInWeek,
				DayStart: intPtr(1), TimeStart: "09:00",
				DayEnd: intPtr(5), TimeEnd: "18:00",
			},
			wantType: "inweek",
		},
		{
			name: "inweek missing day_start",
			req: Request{
				Mode:      ModeInWeek,
				TimeStart: "09:00",
				DayEnd:    intPtr(5), TimeEnd: "18:00",
			},
			wantErr: domain.ErrScheduleParamsMissing,
		},
		{
			name: "inweek missing time_start",
			req: Request{
				Mode:     ModeInWeek,
				DayStart: intPtr(1),
				DayEnd:   intPtr(5), TimeEnd: "18:00",
			},
			wantErr: domain.ErrScheduleParamsMissing,
		},
		{
			name: "inweek missing day_end",
			req: Request{
				Mode:     ModeInWeek,
				DayStart: intPtr(1), TimeStart: "09:00",
				TimeEnd: "18:00",
			},
			wantErr: domain.ErrScheduleParamsMissing,
		},
		{
			name: "inweek missing time_end",
			req: Request{
				Mode:     ModeInWeek,
				DayStart: intPtr(1), TimeStart: "09:00",
				DayEnd: intPtr(5),
			},
			wantErr: domain.ErrScheduleParamsMissing,
		},
		{
			name:    "cron rejected for regular slides",
			req:     Request{Mode: ModeCron, CronStart: "0 * * * *"},
			wantErr: domain.ErrInvalidSchedulingMode,
		},
		{
			name:    "unknown mode",
			req:     Request{Mode: "fortnightly"},
			wantErr: domain.ErrInvalidSchedulingMode,
		},
		{
			name:           "loop rejected for notifications",
			req:            Request{Mode: ModeLoop},
			isNotification: true,
			wantErr:        domain.ErrInvalidSchedulingMode,
		},
		{
			name:           "inweek rejected for notifications",
			req:            Request{Mode: ModeInWeek, DayStart: intPtr(1), TimeStart: "09:00", DayEnd: intPtr(5), TimeEnd: "18:00"},
			isNotification: true,
			wantErr:        domain.ErrInvalidSchedulingMode,
		},
		{
			name:           "cron allowed for notifications",
			req:            Request{Mode: ModeCron, CronStart: "*/5 * * * *"},
			isNotification: true,
			wantType:       "cron",
		},
		{
			name:           "cron without start",
			req:            Request{Mode: ModeCron},
			isNotification: true,
			wantErr:        domain.ErrScheduleParamsMissing,
		},
		{
			name:           "empty mode defaults to datetime for notifications",
			req:            Request{},
			isNotification: true,
			wantErr:        domain.ErrScheduleParamsMissing, // datetime_start absent
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.req, tt.isNotification, time.UTC)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}

			var gotType string
			switch got.(type) {
			case Loop:
				gotType = "loop"
			case DatetimeWindow:
				gotType = "datetime"
			case WeeklyWindow:
				gotType = "inweek"
			case CronExpression:
				gotType = "cron"
			}
			if gotType != tt.wantType {
				t.Errorf("Resolve() variant = %s, want %s", gotType, tt.wantType)
			}
		})
	}
}

func TestCompileLoop(t *testing.T) {
	start, end := Compile(Loop{})
	if start != nil || end != nil {
		t.Errorf("Compile(Loop) = (%v, %v), want (nil, nil)", start, end)
	}
}

func TestCompileDatetimeRoundTrip(t *testing.T) {
	loc := time.UTC
	instant := time.Date(2024, 3, 1, 8, 30, 0, 0, loc)

	start, end := Compile(DatetimeWindow{Start: instant})
	if start == nil {
		t.Fatal("Compile(DatetimeWindow) start = nil")
	}
	if end != nil {
		t.Errorf("open-ended window end = %v, want nil", *end)
	}

	decoded, err := DecodeOneShot(*start, loc)
	if err != nil {
		t.Fatalf("DecodeOneShot(%q) error: %v", *start, err)
	}
	if !decoded.Equal(instant) {
		t.Errorf("round trip = %v, want %v", decoded, instant)
	}
}

func TestCompileDatetimeWithEnd(t *testing.T) {
	loc := time.UTC
	startAt := time.Date(2024, 3, 1, 8, 30, 0, 0, loc)
	endAt := time.Date(2024, 3, 2, 17, 0, 0, 0, loc)

	start, end := Compile(DatetimeWindow{Start: startAt, End: &endAt})
	if start == nil || end == nil {
		t.Fatalf("Compile() = (%v, %v), want both descriptors", start, end)
	}

	decodedEnd, err := DecodeOneShot(*end, loc)
	if err != nil {
		t.Fatalf("DecodeOneShot(%q) error: %v", *end, err)
	}
	if !decodedEnd.Equal(endAt) {
		t.Errorf("end round trip = %v, want %v", decodedEnd, endAt)
	}
}

func TestCompileWeeklyRoundTrip(t *testing.T) {
	window := WeeklyWindow{
		DayStart:  1,
		TimeStart: TimeOfDay{Hour: 9, Minute: 0},
		DayEnd:    5,
		TimeEnd:   TimeOfDay{Hour: 18, Minute: 0},
	}

	start, end := Compile(window)
	if start == nil || end == nil {
		t.Fatalf("Compile(WeeklyWindow) = (%v, %v), want both descriptors", start, end)
	}

	day, tod, err := DecodeWeekly(*start)
	if err != nil {
		t.Fatalf("DecodeWeekly(%q) error: %v", *start, err)
	}
	if day != 1 || tod != (TimeOfDay{Hour: 9, Minute: 0}) {
		t.Errorf("start = weekday %d @ %s, want weekday 1 @ 09:00", day, tod)
	}

	day, tod, err = DecodeWeekly(*end)
	if err != nil {
		t.Fatalf("DecodeWeekly(%q) error: %v", *end, err)
	}
	if day != 5 || tod != (TimeOfDay{Hour: 18, Minute: 0}) {
		t.Errorf("end = weekday %d @ %s, want weekday 5 @ 18:00", day, tod)
	}
}

func TestCompileCronVerbatim(t *testing.T) {
	start, end := Compile(CronExpression{Start: "*/10 8-18 * * 1-5"})
	if start == nil || *start != "*/10 8-18 * * 1-5" {
		t.Errorf("cron start not stored verbatim: %v", start)
	}
	if end != nil {
		t.Errorf("cron end = %v, want nil", *end)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"09:00", TimeOfDay{9, 0}, false},
		{"18:45", TimeOfDay{18, 45}, false},
		{"00:00", TimeOfDay{0, 0}, false},
		{"24:00", TimeOfDay{}, true},
		{"12:60", TimeOfDay{}, true},
		{"garbage", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeWeekday(t *testing.T) {
	if day, err := normalizeWeekday(7); err != nil || day != 0 {
		t.Errorf("normalizeWeekday(7) = (%d, %v), want (0, nil)", day, err)
	}
	if _, err := normalizeWeekday(8); err == nil {
		t.Error("normalizeWeekday(8) expected error")
	}
	if _, err := normalizeWeekday(-1); err == nil {
		t.Error("normalizeWeekday(-1) expected error")
	}
}
