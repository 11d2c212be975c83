package shift

import (
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	Name          string `json:"name"`
	StartTime     string `json:"start_time"`
	OfficeEndTime string `json:"office_end_time"`
	EndTime       string `json:"end_time"`
	DepartureTime string `json:"departure_time"`
	BreakMinutes  int    `json:"break_minutes"`
	WorkDays      []int  `json:"work_days"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	clockFields := map[string]string{
		"start_time":      r.StartTime,
		"office_end_time": r.OfficeEndTime,
		"end_time":        r.EndTime,
		"departure_time":  r.DepartureTime,
	}
	for field, value := range clockFields {
		if !validator.IsValidClockTime(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a valid HH:MM time",
			})
		}
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(r.WorkDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_days",
			Message: "at least one work day is required",
		})
	}
	for _, d := range r.WorkDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "work days must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	// Ordering check in wall-clock-crossing-midnight terms. Office end must
	// fall between start and end so scheduled-minute counts never go negative
	// downstream.
	if len(errs) == 0 && !ClockOrderingValid(r.StartTime, r.OfficeEndTime, r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_end_time",
			Message: "office_end_time must fall between start_time and end_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	OfficeEndTime *string `json:"office_end_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	DepartureTime *string `json:"departure_time,omitempty"`
	BreakMinutes  *int    `json:"break_minutes,omitempty"`
	WorkDays      []int   `json:"work_days,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	clockFields := map[string]*string{
		"start_time":      r.StartTime,
		"office_end_time": r.OfficeEndTime,
		"end_time":        r.EndTime,
		"departure_time":  r.DepartureTime,
	}
	for field, value := range clockFields {
		if value != nil && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a valid HH:MM time",
			})
		}
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	for _, d := range r.WorkDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "work days must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClockOrderingValid reports start <= officeEnd <= end after unrolling
// midnight crossing onto a single axis.
func ClockOrderingValid(start, officeEnd, end string) bool {
	startMin, err := ParseClockMinutes(start)
	if err != nil {
		return false
	}
	officeMin, err := ParseClockMinutes(officeEnd)
	if err != nil {
		return false
	}
	endMin, err := ParseClockMinutes(end)
	if err != nil {
		return false
	}

	overnight := endMin < startMin
	if overnight {
		endMin += 24 * 60
		if officeMin < startMin {
			officeMin += 24 * 60
		}
	}
	return startMin <= officeMin && officeMin <= endMin
}

type ShiftResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	StartTime     string   `json:"start_time"`
	OfficeEndTime string   `json:"office_end_time"`
	EndTime       string   `json:"end_time"`
	DepartureTime string   `json:"departure_time"`
	BreakMinutes  int      `json:"break_minutes"`
	IsNightShift  bool     `json:"is_night_shift"`
	WorkDays      []int    `json:"work_days"`
	DaysApplied   []string `json:"days_applied"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
