package report

import (
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyReportResponse struct {
	Month string `json:"month"`

	// Sums over recorded day statuses
	StandardHours float64 `json:"standard_hours"`
	OTHours       float64 `json:"ot_hours"`
	SundayHours   float64 `json:"sunday_hours"`
	NightHours    float64 `json:"night_hours"`
	TotalHours    float64 `json:"total_hours"`
	HolidayDays   int     `json:"holiday_days"`
	LateMinutes   int     `json:"late_minutes"`
	EarlyMinutes  int     `json:"early_minutes"`

	// Count of days per status value
	DaysByStatus map[string]int `json:"days_by_status"`

	// Whole-shift projection for the month's remaining scheduled workdays,
	// derived from the active shift's configured boundaries
	ProjectedRemainingHours float64 `json:"projected_remaining_hours"`
}
