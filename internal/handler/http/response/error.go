package response

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/auth"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A rapid-press anomaly is not a failure: the punch is stored and the
	// client must ask the user whether to count the day anyway.
	var rapidPress *attendance.RapidPressError
	if errors.As(err, &rapidPress) {
		ConflictWithDetails(w, "RAPID_PRESS_CONFIRMATION_REQUIRED", rapidPress.Error(), map[string]string{
			"actual_duration_seconds": fmt.Sprintf("%.0f", rapidPress.ActualDuration.Seconds()),
			"threshold_seconds":       fmt.Sprintf("%.0f", rapidPress.Threshold.Seconds()),
			"check_in_at":             rapidPress.CheckInAt.Format(time.RFC3339),
			"check_out_at":            rapidPress.CheckOutAt.Format(time.RFC3339),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNoActiveShift):
		NotFound(w, "No active shift configured")
	case errors.Is(err, shift.ErrInvalidClockTime):
		BadRequest(w, "Invalid clock time", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrStatusNotFound):
		NotFound(w, "No status recorded for this date")
	case errors.Is(err, attendance.ErrDuplicateLog):
		Conflict(w, "This punch was already recorded today")
	case errors.Is(err, attendance.ErrLogOutOfOrder):
		Conflict(w, "Punch would break the daily progression")
	case errors.Is(err, attendance.ErrNoRapidPressPending):
		Conflict(w, "No rapid-press anomaly pending for this date")
	case errors.Is(err, attendance.ErrInvalidLogType):
		BadRequest(w, "Invalid log type", nil)
	case errors.Is(err, attendance.ErrInvalidManualStatus):
		BadRequest(w, "Invalid manual status", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, attendance.ErrDurationTooShort):
		BadRequest(w, "Worked duration is too short", nil)
	case errors.Is(err, attendance.ErrDurationTooLong):
		BadRequest(w, "Worked duration is too long", nil)
	case errors.Is(err, attendance.ErrOutsideShiftBounds):
		BadRequest(w, "Times fall too far outside the shift schedule", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
