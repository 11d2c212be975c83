package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ScheduledTimes holds the calendar-accurate instants for one day's instance
// of a shift. For well-formed shifts Start <= OfficeEnd <= End; the engine
// treats that ordering as a data-quality assumption validated at the entry
// boundary, not corrected here.
type ScheduledTimes struct {
	Start     time.Time
	OfficeEnd time.Time
	End       time.Time
	Overnight bool
}

// ParseClockMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight.
func ParseClockMinutes(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	return hour*60 + minute, nil
}

// IsOvernight reports whether the shift crosses midnight, recomputed from the
// raw StartTime/EndTime strings. The cached IsNightShift flag can go stale
// when times are edited, so it is never consulted here.
func (s Shift) IsOvernight() (bool, error) {
	startMin, err := ParseClockMinutes(s.StartTime)
	if err != nil {
		return false, fmt.Errorf("start time: %w", err)
	}
	endMin, err := ParseClockMinutes(s.EndTime)
	if err != nil {
		return false, fmt.Errorf("end time: %w", err)
	}
	return endMin < startMin, nil
}

// BuildScheduledTimes resolves the shift's wall-clock fields against a target
// calendar date. When the shift crosses midnight both OfficeEnd and End are
// anchored to the day after workDate; they share one anchor rather than being
// re-evaluated independently, so an office end of 06:00 with a shift end of
// 06:30 lands on the same next day.
func BuildScheduledTimes(s Shift, workDate time.Time) (ScheduledTimes, error) {
	startMin, err := ParseClockMinutes(s.StartTime)
	if err != nil {
		return ScheduledTimes{}, fmt.Errorf("start time: %w", err)
	}
	officeEndMin, err := ParseClockMinutes(s.OfficeEndTime)
	if err != nil {
		return ScheduledTimes{}, fmt.Errorf("office end time: %w", err)
	}
	endMin, err := ParseClockMinutes(s.EndTime)
	if err != nil {
		return ScheduledTimes{}, fmt.Errorf("end time: %w", err)
	}

	overnight := endMin < startMin

	day := StartOfDay(workDate)
	endAnchor := day
	if overnight {
		endAnchor = day.AddDate(0, 0, 1)
	}

	return ScheduledTimes{
		Start:     atMinutes(day, startMin),
		OfficeEnd: atMinutes(endAnchor, officeEndMin),
		End:       atMinutes(endAnchor, endMin),
		Overnight: overnight,
	}, nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atMinutes(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}
