package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for punch tracking and day-status
// management.
type AttendanceService interface {
	// ButtonState evaluates the interactive button state for now. Returns
	// shift.ErrNoActiveShift when no shift governs the day; callers must
	// treat that as "no button shown", not as the initial state.
	ButtonState(ctx context.Context, now time.Time) (ButtonStateResponse, error)

	// Punch records a punch event and, on terminal events, classifies the
	// day. A *RapidPressError propagates to the caller for confirmation.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// ConfirmRapidPress resolves a pending rapid-press anomaly with explicit
	// user consent, always yielding a full scheduled day
	ConfirmRapidPress(ctx context.Context, req ConfirmRapidPressRequest) (DayStatusResponse, error)

	// LogsForDate retrieves a date's punch logs
	LogsForDate(ctx context.Context, date string) ([]LogResponse, error)

	// StatusesForMonth retrieves all status records in a YYYY-MM month
	StatusesForMonth(ctx context.Context, month string) ([]DayStatusResponse, error)

	// SetManualStatus applies a manual override (or executes a recalculate
	// command), bypassing the classifier
	SetManualStatus(ctx context.Context, req ManualStatusRequest) (DayStatusResponse, error)

	// RecalculateFromLogs recomputes a date's status from stored logs,
	// clearing any manual override
	RecalculateFromLogs(ctx context.Context, date string) (DayStatusResponse, error)

	// UpdateAttendanceTime replaces a date's logs with a synthetic check-in /
	// check-out pair and recalculates
	UpdateAttendanceTime(ctx context.Context, req UpdateAttendanceTimeRequest) (DayStatusResponse, error)

	// DeleteStatus removes a date's status record
	DeleteStatus(ctx context.Context, date string) error
}
