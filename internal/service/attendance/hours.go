package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
)

// The night window is fixed business policy: 22:00 of the work date through
// 06:00 of the following day.
const (
	NightWindowStartMinute = 22 * 60
	NightWindowEndMinute   = 6 * 60

	// LegacyStandardCapHours caps the standard bucket in the whole-shift
	// apportionment; anything beyond it counts as overtime.
	LegacyStandardCapHours = 8.0
)

// NightOverlapMinutes computes how many minutes of the worked interval fall
// inside the night window anchored to workDate. The interval may cross
// midnight. Total function: intervals outside the window yield 0.
func NightOverlapMinutes(start, end, workDate time.Time) float64 {
	day := shift.StartOfDay(workDate)
	nextDay := day.AddDate(0, 0, 1)

	// [22:00, 24:00) of the work date
	lateOverlap := overlapMinutes(start, end,
		day.Add(time.Duration(NightWindowStartMinute)*time.Minute), nextDay)

	// [00:00, 06:00) of the next day
	earlyOverlap := overlapMinutes(start, end,
		nextDay, nextDay.Add(time.Duration(NightWindowEndMinute)*time.Minute))

	return lateOverlap + earlyOverlap
}

// overlapMinutes returns max(0, min(e1,e2) - max(s1,s2)) in minutes.
func overlapMinutes(s1, e1, s2, e2 time.Time) float64 {
	s := s1
	if s2.After(s) {
		s = s2
	}
	e := e1
	if e2.Before(e) {
		e = e2
	}
	if !e.After(s) {
		return 0
	}
	return e.Sub(s).Minutes()
}

// ScheduledShiftHours is the whole-shift total: start through office end,
// crossing midnight when the shift is overnight, minus the unpaid break,
// floored at zero.
func ScheduledShiftHours(sh shift.Shift) (float64, error) {
	startMin, err := shift.ParseClockMinutes(sh.StartTime)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}
	officeMin, err := shift.ParseClockMinutes(sh.OfficeEndTime)
	if err != nil {
		return 0, fmt.Errorf("office end time: %w", err)
	}
	overnight, err := sh.IsOvernight()
	if err != nil {
		return 0, err
	}

	total := officeMin - startMin
	if overnight {
		total = officeMin + 24*60 - startMin
	}
	total -= sh.BreakMinutes
	if total < 0 {
		total = 0
	}
	return float64(total) / 60.0, nil
}

// HourBuckets is one day's apportioned hours.
type HourBuckets struct {
	Standard float64
	OT       float64
	Sunday   float64
	Night    float64
	Total    float64
	Holiday  bool
}

// LegacyApportion splits the whole-shift scheduled total into buckets based
// only on the shift's configured boundaries and the calendar. It is the
// convenience path for days without usable punches; per-log classification is
// the source of truth otherwise.
func LegacyApportion(sh shift.Shift, workDate time.Time, holidays []holiday.PublicHoliday) (HourBuckets, error) {
	total, err := ScheduledShiftHours(sh)
	if err != nil {
		return HourBuckets{}, err
	}

	standard := total
	if standard > LegacyStandardCapHours {
		standard = LegacyStandardCapHours
	}
	ot := total - standard

	st, err := shift.BuildScheduledTimes(sh, workDate)
	if err != nil {
		return HourBuckets{}, err
	}

	buckets := HourBuckets{
		Standard: round2(standard),
		OT:       round2(ot),
		Night:    round2(NightOverlapMinutes(st.Start, st.End, workDate) / 60.0),
		Total:    round2(total),
		Holiday:  holiday.Contains(holidays, workDate.Format("2006-01-02")),
	}
	if workDate.Weekday() == time.Sunday {
		buckets.Sunday = buckets.Total
	}
	return buckets, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
