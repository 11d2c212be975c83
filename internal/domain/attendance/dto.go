package attendance

import (
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type PunchRequest struct {
	Type string  `json:"type"`
	At   *string `json:"at,omitempty"` // RFC3339; defaults to now
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LogType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: go_work, check_in, punch, check_out, complete",
		})
	}

	if r.At != nil {
		if _, ok := validator.IsValidDateTime(*r.At); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfirmRapidPressRequest struct {
	Date       string  `json:"date"`
	CheckInAt  *string `json:"check_in_at,omitempty"`  // RFC3339; defaults to the stored log
	CheckOutAt *string `json:"check_out_at,omitempty"` // RFC3339; defaults to the stored log
}

func (r *ConfirmRapidPressRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	for field, value := range map[string]*string{
		"check_in_at":  r.CheckInAt,
		"check_out_at": r.CheckOutAt,
	} {
		if value != nil {
			if _, ok := validator.IsValidDateTime(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be an RFC3339 timestamp",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualStatusRequest struct {
	Date   string `json:"-"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func (r *ManualStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	s := Status(r.Status)
	if !s.IsManual() && s != CommandRecalculate && s != CommandClearManual {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be a manual status or a recalculate command",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceTimeRequest struct {
	Date       string `json:"-"`
	CheckInAt  string `json:"check_in_at"`  // RFC3339
	CheckOutAt string `json:"check_out_at"` // RFC3339
}

func (r *UpdateAttendanceTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDateTime(r.CheckInAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_at",
			Message: "check_in_at must be an RFC3339 timestamp",
		})
	}

	if _, ok := validator.IsValidDateTime(r.CheckOutAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_at",
			Message: "check_out_at must be an RFC3339 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Type string `json:"type"`
	At   string `json:"at"`
}

type ButtonStateResponse struct {
	State       string `json:"state"`
	Mode        string `json:"mode"`
	ShiftID     string `json:"shift_id"`
	ShiftName   string `json:"shift_name"`
	WithinAhead bool   `json:"within_active_window"`
}

type DayStatusResponse struct {
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	LegacyStatus     string   `json:"legacy_status"`
	AppliedShiftID   *string  `json:"applied_shift_id,omitempty"`
	CheckInAt        *string  `json:"check_in_at,omitempty"`
	CheckOutAt       *string  `json:"check_out_at,omitempty"`
	StandardHours    float64  `json:"standard_hours"`
	OTHours          float64  `json:"ot_hours"`
	SundayHours      float64  `json:"sunday_hours"`
	NightHours       float64  `json:"night_hours"`
	TotalHours       float64  `json:"total_hours"`
	LateMinutes      int      `json:"late_minutes"`
	EarlyMinutes     int      `json:"early_minutes"`
	IsHolidayWork    bool     `json:"is_holiday_work"`
	IsManualOverride bool     `json:"is_manual_override"`
	Notes            string   `json:"notes,omitempty"`
}

type PunchResponse struct {
	Log         LogResponse        `json:"log"`
	ButtonState string             `json:"button_state"`
	DayStatus   *DayStatusResponse `json:"day_status,omitempty"`
}
