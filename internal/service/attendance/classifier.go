package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
)

// EarlyLeaveSlack is how much before scheduled office end a check-out starts
// counting as an early leave.
const EarlyLeaveSlack = 30 * time.Minute

// ClassifyDay turns a day's punch logs into a status record.
//
// A complete log always wins and short-circuits every other check. When both
// check-in and check-out exist, a gap below the rapid-press threshold aborts
// classification with *attendance.RapidPressError rather than guessing; the
// confirmation path (ClassifyDayConfirmed) must then be invoked with explicit
// user consent. Otherwise the day is graded against scheduled times with the
// configured late tolerance, and worked minutes are apportioned into
// standard, overtime, Sunday and night buckets.
func ClassifyDay(date time.Time, logs []attendance.Log, sh shift.Shift, cfg settings.UserSettings, holidays []holiday.PublicHoliday) (attendance.DayStatus, error) {
	st, err := shift.BuildScheduledTimes(sh, date)
	if err != nil {
		return attendance.DayStatus{}, fmt.Errorf("build scheduled times: %w", err)
	}

	set := attendance.CollectDaySet(logs)
	dateStr := date.Format("2006-01-02")
	isHoliday := holiday.Contains(holidays, dateStr)

	result := attendance.DayStatus{
		Date:          dateStr,
		IsHolidayWork: isHoliday,
	}

	switch {
	case set.Complete != nil:
		// Complete always wins; check-in/out may be absent.
		result.Status = attendance.StatusDuCong
		result.CheckInAt = logTime(set.CheckIn)
		result.CheckOutAt = logTime(set.CheckOut)
		applyScheduledBuckets(&result, st, sh.BreakMinutes, date)

	case set.CheckIn != nil && set.CheckOut != nil:
		in := set.CheckIn.At
		out := set.CheckOut.At

		actualDuration := out.Sub(in)
		threshold := cfg.RapidPressThreshold()
		if actualDuration < threshold {
			return attendance.DayStatus{}, &attendance.RapidPressError{
				ActualDuration: actualDuration,
				Threshold:      threshold,
				CheckInAt:      in,
				CheckOutAt:     out,
			}
		}

		isLate := in.After(st.Start.Add(cfg.LateThreshold()))
		isEarly := out.Before(st.OfficeEnd.Add(-EarlyLeaveSlack))

		switch {
		case isLate && isEarly:
			result.Status = attendance.StatusDiMuonVeSom
		case isLate:
			result.Status = attendance.StatusDiMuon
		case isEarly:
			result.Status = attendance.StatusVeSom
		default:
			result.Status = attendance.StatusDuCong
		}

		result.CheckInAt = &in
		result.CheckOutAt = &out
		if isLate {
			result.LateMinutes = flooredMinutes(in.Sub(st.Start))
		}
		if isEarly {
			result.EarlyMinutes = flooredMinutes(st.OfficeEnd.Sub(out))
		}

		if result.Status == attendance.StatusDuCong {
			// No deviation: hours come from scheduled boundaries.
			applyScheduledBuckets(&result, st, sh.BreakMinutes, date)
		} else {
			applyActualBuckets(&result, in, out, st, sh.BreakMinutes, date)
		}

	case set.CheckIn != nil:
		result.Status = attendance.StatusChuaRa
		result.CheckInAt = logTime(set.CheckIn)

	case set.CheckOut != nil || set.Punch != nil:
		// Punches exist but there is no check-in to grade against.
		result.Status = attendance.StatusThieuLog
		result.CheckOutAt = logTime(set.CheckOut)

	case set.GoWork != nil:
		result.Status = attendance.StatusDaDiChuaVao

	default:
		result.Status = attendance.StatusChuaDi
	}

	return result, nil
}

// ClassifyDayConfirmed is the rapid-press confirmation path, invoked only
// after the user explicitly accepts the anomaly. The user is asserting a
// full normal day despite the suspiciously fast punches, so the result is
// always DU_CONG with hours from scheduled boundaries, and the notes field
// records the confirmed-override provenance.
func ClassifyDayConfirmed(date time.Time, logs []attendance.Log, sh shift.Shift, confirmedCheckIn, confirmedCheckOut time.Time) (attendance.DayStatus, error) {
	st, err := shift.BuildScheduledTimes(sh, date)
	if err != nil {
		return attendance.DayStatus{}, fmt.Errorf("build scheduled times: %w", err)
	}

	result := attendance.DayStatus{
		Date:       date.Format("2006-01-02"),
		Status:     attendance.StatusDuCong,
		CheckInAt:  &confirmedCheckIn,
		CheckOutAt: &confirmedCheckOut,
		Notes: fmt.Sprintf("confirmed rapid press: punches %.0fs apart, counted as full scheduled day",
			confirmedCheckOut.Sub(confirmedCheckIn).Seconds()),
	}
	applyScheduledBuckets(&result, st, sh.BreakMinutes, date)
	return result, nil
}

// BuildManualStatus produces a user-asserted day record. Manual leave-type
// statuses always mean zero scheduled and worked hours, regardless of any
// logs that might exist for the date.
func BuildManualStatus(date string, status attendance.Status, notes string) (attendance.DayStatus, error) {
	if !status.IsManual() {
		return attendance.DayStatus{}, attendance.ErrInvalidManualStatus
	}
	return attendance.DayStatus{
		Date:             date,
		Status:           status,
		IsHolidayWork:    status == attendance.StatusNghiLe,
		IsManualOverride: true,
		Notes:            notes,
	}, nil
}

// applyScheduledBuckets fills hour buckets from the scheduled boundaries:
// standard = office span minus break, overtime = allowance past office end,
// night overlap over the full scheduled interval.
func applyScheduledBuckets(result *attendance.DayStatus, st shift.ScheduledTimes, breakMinutes int, date time.Time) {
	standardMin := st.OfficeEnd.Sub(st.Start).Minutes() - float64(breakMinutes)
	if standardMin < 0 {
		standardMin = 0
	}
	otMin := st.End.Sub(st.OfficeEnd).Minutes()
	if otMin < 0 {
		otMin = 0
	}
	nightMin := NightOverlapMinutes(st.Start, st.End, date)
	finishBuckets(result, standardMin, otMin, nightMin, date)
}

// applyActualBuckets fills hour buckets from the actual punch interval:
// the standard portion is capped at the office end, anything actually worked
// past it counts as overtime, night overlap over the punch interval.
func applyActualBuckets(result *attendance.DayStatus, in, out time.Time, st shift.ScheduledTimes, breakMinutes int, date time.Time) {
	standardEnd := out
	if st.OfficeEnd.Before(standardEnd) {
		standardEnd = st.OfficeEnd
	}
	standardMin := standardEnd.Sub(in).Minutes() - float64(breakMinutes)
	if standardMin < 0 {
		standardMin = 0
	}
	otStart := st.OfficeEnd
	if in.After(otStart) {
		// Overtime only covers time actually worked past office end.
		otStart = in
	}
	otMin := out.Sub(otStart).Minutes()
	if otMin < 0 {
		otMin = 0
	}
	nightMin := NightOverlapMinutes(in, out, date)
	finishBuckets(result, standardMin, otMin, nightMin, date)
}

// finishBuckets converts minute counts to hours, applies the Sunday rule
// (bucketed by nominal work date, not by where the hours fall), and rounds
// once at the end.
func finishBuckets(result *attendance.DayStatus, standardMin, otMin, nightMin float64, date time.Time) {
	result.StandardHours = round2(standardMin / 60.0)
	result.OTHours = round2(otMin / 60.0)
	result.TotalHours = round2((standardMin + otMin) / 60.0)
	result.NightHours = round2(nightMin / 60.0)
	if date.Weekday() == time.Sunday {
		result.SundayHours = result.TotalHours
	}
}

func flooredMinutes(d time.Duration) int {
	m := int(math.Floor(d.Minutes()))
	if m < 0 {
		return 0
	}
	return m
}

func logTime(l *attendance.Log) *time.Time {
	if l == nil {
		return nil
	}
	t := l.At
	return &t
}
