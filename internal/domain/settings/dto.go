package settings

import (
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	LateThresholdMinutes      *int    `json:"late_threshold_minutes,omitempty"`
	RapidPressThresholdSecond *int    `json:"rapid_press_threshold_seconds,omitempty"`
	MultiButtonMode           *string `json:"multi_button_mode,omitempty"`
	ActiveShiftID             *string `json:"active_shift_id,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "late_threshold_minutes must not be negative",
		})
	}

	if r.RapidPressThresholdSecond != nil && *r.RapidPressThresholdSecond <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rapid_press_threshold_seconds",
			Message: "rapid_press_threshold_seconds must be positive",
		})
	}

	if r.MultiButtonMode != nil && !validator.IsInSlice(*r.MultiButtonMode, ButtonModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "multi_button_mode",
			Message: "multi_button_mode must be one of: full, simple",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	LateThresholdMinutes      int     `json:"late_threshold_minutes"`
	RapidPressThresholdSecond int     `json:"rapid_press_threshold_seconds"`
	MultiButtonMode           string  `json:"multi_button_mode"`
	ActiveShiftID             *string `json:"active_shift_id,omitempty"`
	UpdatedAt                 string  `json:"updated_at"`
}
