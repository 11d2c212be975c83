package shift

import (
	"fmt"
	"time"
)

// Interactive window bounds around a shift instance. These are business
// policy constants, not user configuration: one hour of pre-roll for commute
// and preparation, two hours of post-roll for completion stragglers.
const (
	ActiveWindowLead = 1 * time.Hour
	ActiveWindowTail = 2 * time.Hour
)

// IsWithinActiveWindow reports whether now falls inside the interactive
// window [start-lead, end+tail] of a shift instance. For an overnight shift
// the instance that started the previous evening is still live after
// midnight, so both today's and yesterday's instances are consulted.
func IsWithinActiveWindow(s Shift, now time.Time) (bool, error) {
	inToday, err := windowContains(s, StartOfDay(now), now)
	if err != nil {
		return false, err
	}
	if inToday {
		return true, nil
	}

	overnight, err := s.IsOvernight()
	if err != nil {
		return false, err
	}
	if !overnight {
		return false, nil
	}
	return windowContains(s, StartOfDay(now).AddDate(0, 0, -1), now)
}

// InstanceAnchor returns the work date of the shift instance whose
// interactive window contains now, preferring today's instance. When no
// window contains now it falls back to today, which keeps downstream
// proximity math anchored to the upcoming instance.
func InstanceAnchor(s Shift, now time.Time) (time.Time, error) {
	today := StartOfDay(now)
	inToday, err := windowContains(s, today, now)
	if err != nil {
		return time.Time{}, err
	}
	if inToday {
		return today, nil
	}

	overnight, err := s.IsOvernight()
	if err != nil {
		return time.Time{}, err
	}
	if overnight {
		yesterday := today.AddDate(0, 0, -1)
		inYesterday, err := windowContains(s, yesterday, now)
		if err != nil {
			return time.Time{}, err
		}
		if inYesterday {
			return yesterday, nil
		}
	}
	return today, nil
}

func windowContains(s Shift, workDate, now time.Time) (bool, error) {
	st, err := BuildScheduledTimes(s, workDate)
	if err != nil {
		return false, fmt.Errorf("build scheduled times: %w", err)
	}
	windowStart := st.Start.Add(-ActiveWindowLead)
	windowEnd := st.End.Add(ActiveWindowTail)
	return !now.Before(windowStart) && !now.After(windowEnd), nil
}

// ShouldResetButton reports whether now falls in the open interval
// (start-lead, start): the button snaps back to its initial state in the hour
// immediately preceding shift start, even if yesterday's cycle never reached
// completion.
func ShouldResetButton(s Shift, now time.Time) (bool, error) {
	st, err := BuildScheduledTimes(s, StartOfDay(now))
	if err != nil {
		return false, fmt.Errorf("build scheduled times: %w", err)
	}
	return now.After(st.Start.Add(-ActiveWindowLead)) && now.Before(st.Start), nil
}
