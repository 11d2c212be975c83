package attendance

import (
	"errors"
	"fmt"
	"time"
)

// Attendance domain errors
var (
	// Punch errors
	ErrInvalidLogType = errors.New("invalid attendance log type")
	ErrDuplicateLog   = errors.New("a log of this type already exists for today")
	ErrLogOutOfOrder  = errors.New("log type is out of order for today's progression")

	// Status errors
	ErrStatusNotFound      = errors.New("no status record for this date")
	ErrInvalidManualStatus = errors.New("status is not a manual override status")
	ErrNoRapidPressPending = errors.New("no rapid-press outcome is pending for this date")

	// Manual time edit errors
	ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")
	ErrDurationTooShort      = errors.New("worked duration is implausibly short (under 1 hour)")
	ErrDurationTooLong       = errors.New("worked duration is implausibly long (over 16 hours)")
	ErrOutsideShiftBounds    = errors.New("times are too far outside the shift boundaries")
)

// RapidPressError signals that check-in and check-out are suspiciously close
// together and the classifier refuses to guess. It is a control-flow branch
// demanding user confirmation, not a failure; callers must surface it and
// re-invoke the confirmation path with explicit consent.
type RapidPressError struct {
	ActualDuration time.Duration
	Threshold      time.Duration
	CheckInAt      time.Time
	CheckOutAt     time.Time
}

func (e *RapidPressError) Error() string {
	return fmt.Sprintf(
		"check-out followed check-in after %s, below the %s rapid-press threshold; user confirmation required",
		e.ActualDuration, e.Threshold,
	)
}
