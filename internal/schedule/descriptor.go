package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"marquee/internal/domain"
)

// Recurrence descriptors are cron-shaped strings in two forms:
//
//	one-shot:  "M H D Mo * YYYY"  - a single absolute instant, year-qualified
//	weekly:    "M H * * W"        - a weekly recurring weekday + time of day
//
// Free-form cron expressions (notification scheduling) are stored verbatim
// and never decoded here; the playback evaluator owns their interpretation.

func encodeOneShot(t time.Time) string {
	return fmt.Sprintf("%d %d %d %d * %d",
		t.Minute(), t.Hour(), t.Day(), int(t.Month()), t.Year())
}

func encodeWeekly(day int, tod TimeOfDay) string {
	return fmt.Sprintf("%d %d * * %d", tod.Minute, tod.Hour, day)
}

// DecodeOneShot parses a one-shot descriptor back into the instant it was
// compiled from, in the given location.
func DecodeOneShot(expr string, loc *time.Location) (time.Time, error) {
	fields := strings.Fields(expr)
	if len(fields) != 6 || fields[4] != "*" {
		return time.Time{}, fmt.Errorf("%w: not a one-shot descriptor: %q", domain.ErrValidation, expr)
	}

	nums := make([]int, 0, 5)
	for _, f := range []string{fields[0], fields[1], fields[2], fields[3], fields[5]} {
		n, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: malformed descriptor field %q in %q", domain.ErrValidation, f, expr)
		}
		nums = append(nums, n)
	}

	minute, hour, day, month, year := nums[0], nums[1], nums[2], nums[3], nums[4]
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), nil
}

// DecodeWeekly parses a weekly descriptor back into its weekday and time of
// day.
func DecodeWeekly(expr string) (weekday int, tod TimeOfDay, err error) {
	fields := strings.Fields(expr)
	if len(fields) != 5 || fields[2] != "*" || fields[3] != "*" {
		return 0, TimeOfDay{}, fmt.Errorf("%w: not a weekly descriptor: %q", domain.ErrValidation, expr)
	}

	minute, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, TimeOfDay{}, fmt.Errorf("%w: malformed minute in %q", domain.ErrValidation, expr)
	}
	hour, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, TimeOfDay{}, fmt.Errorf("%w: malformed hour in %q", domain.ErrValidation, expr)
	}
	weekday, err = strconv.Atoi(fields[4])
	if err != nil {
		return 0, TimeOfDay{}, fmt.Errorf("%w: malformed weekday in %q", domain.ErrValidation, expr)
	}

	return weekday, TimeOfDay{Hour: hour, Minute: minute}, nil
}
