package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrNoActiveShift    = errors.New("no active shift configured")
	ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")
)
