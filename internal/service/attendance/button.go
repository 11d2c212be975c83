package attendance

import (
	"fmt"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
)

// ButtonState is the single interactive state the UI should present.
type ButtonState string

const (
	ButtonGoWork           ButtonState = "go_work"
	ButtonAwaitingCheckIn  ButtonState = "awaiting_check_in"
	ButtonCheckIn          ButtonState = "check_in"
	ButtonWorking          ButtonState = "working"
	ButtonCheckOut         ButtonState = "check_out"
	ButtonAwaitingComplete ButtonState = "awaiting_complete"
	ButtonCompletedDay     ButtonState = "completed_day"
)

// Time-proximity gates for state transitions. The check-in action lights up
// within half an hour of scheduled start; the check-out action from half an
// hour before scheduled office end onward.
const (
	CheckInProximity = 30 * time.Minute
	CheckOutLead     = 30 * time.Minute
)

// CurrentButtonState derives the button state from today's log set, the
// shift, the button mode and the current instant. Pure: identical inputs
// always yield the identical state, and no log is written here.
func CurrentButtonState(sh shift.Shift, logs []attendance.Log, now time.Time, mode settings.ButtonMode) (ButtonState, error) {
	within, err := shift.IsWithinActiveWindow(sh, now)
	if err != nil {
		return "", err
	}
	reset, err := shift.ShouldResetButton(sh, now)
	if err != nil {
		return "", err
	}

	set := attendance.CollectDaySet(logs)

	if mode == settings.ButtonModeSimple {
		// Low-friction variant: one tap a day.
		if !within || reset || set.GoWork == nil {
			return ButtonGoWork, nil
		}
		return ButtonCompletedDay, nil
	}

	if !within || reset {
		return ButtonGoWork, nil
	}
	if set.GoWork == nil {
		return ButtonGoWork, nil
	}

	anchor, err := shift.InstanceAnchor(sh, now)
	if err != nil {
		return "", err
	}
	st, err := shift.BuildScheduledTimes(sh, anchor)
	if err != nil {
		return "", fmt.Errorf("build scheduled times: %w", err)
	}

	if set.CheckIn == nil {
		if absDuration(now.Sub(st.Start)) <= CheckInProximity {
			return ButtonCheckIn, nil
		}
		return ButtonAwaitingCheckIn, nil
	}

	if set.CheckOut == nil {
		if now.Sub(st.OfficeEnd) >= -CheckOutLead {
			return ButtonCheckOut, nil
		}
		return ButtonWorking, nil
	}

	if set.Complete == nil {
		return ButtonAwaitingComplete, nil
	}

	return ButtonCompletedDay, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
