package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/report"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	attendanceservice "github.com/chamcong-app/chamcong-backend-go/internal/service/attendance"
)

type ReportServiceImpl struct {
	statusRepo   attendance.StatusRepository
	shiftRepo    shift.ShiftRepository
	settingsRepo settings.SettingsRepository
	holidayRepo  holiday.HolidayRepository
}

func NewReportService(
	statusRepo attendance.StatusRepository,
	shiftRepo shift.ShiftRepository,
	settingsRepo settings.SettingsRepository,
	holidayRepo holiday.HolidayRepository,
) report.ReportService {
	return &ReportServiceImpl{
		statusRepo:   statusRepo,
		shiftRepo:    shiftRepo,
		settingsRepo: settingsRepo,
		holidayRepo:  holidayRepo,
	}
}

// Monthly implements report.ReportService.
func (r *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	statuses, err := r.statusRepo.ListByMonth(ctx, req.Month)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list statuses: %w", err)
	}

	resp := report.MonthlyReportResponse{
		Month:        req.Month,
		DaysByStatus: make(map[string]int),
	}

	for _, s := range statuses {
		resp.StandardHours += s.StandardHours
		resp.OTHours += s.OTHours
		resp.SundayHours += s.SundayHours
		resp.NightHours += s.NightHours
		resp.TotalHours += s.TotalHours
		resp.LateMinutes += s.LateMinutes
		resp.EarlyMinutes += s.EarlyMinutes
		if s.IsHolidayWork && s.Status.IsWorked() {
			resp.HolidayDays++
		}
		resp.DaysByStatus[string(s.Status)]++
	}

	resp.StandardHours = round2(resp.StandardHours)
	resp.OTHours = round2(resp.OTHours)
	resp.SundayHours = round2(resp.SundayHours)
	resp.NightHours = round2(resp.NightHours)
	resp.TotalHours = round2(resp.TotalHours)

	projected, err := r.projectRemaining(ctx, req.Month, statuses)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}
	resp.ProjectedRemainingHours = round2(projected)

	return resp, nil
}

// projectRemaining estimates hours still to be worked this month: every
// scheduled workday from tomorrow through month end, valued at the active
// shift's whole-shift total. Days already carrying a status are excluded.
func (r *ReportServiceImpl) projectRemaining(ctx context.Context, month string, statuses []attendance.DayStatus) (float64, error) {
	cfg, err := r.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get settings: %w", err)
	}
	if cfg.ActiveShiftID == nil || *cfg.ActiveShiftID == "" {
		return 0, nil
	}
	sh, err := r.shiftRepo.GetByID(ctx, *cfg.ActiveShiftID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get active shift: %w", err)
	}

	monthStart, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return 0, fmt.Errorf("failed to parse month: %w", err)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	// Past months have nothing left to project; future months project in
	// full.
	cursor := monthStart
	today := shift.StartOfDay(time.Now())
	if !today.Before(monthEnd) {
		return 0, nil
	}
	if today.After(cursor) || today.Equal(cursor) {
		cursor = today.AddDate(0, 0, 1)
	}

	recorded := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		recorded[s.Date] = true
	}

	holidays, err := r.holidayRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list holidays: %w", err)
	}

	var projected float64
	for ; cursor.Before(monthEnd); cursor = cursor.AddDate(0, 0, 1) {
		if recorded[cursor.Format("2006-01-02")] || !sh.AppliesOn(cursor.Weekday()) {
			continue
		}
		buckets, err := attendanceservice.LegacyApportion(sh, cursor, holidays)
		if err != nil {
			return 0, err
		}
		if buckets.Holiday {
			continue
		}
		projected += buckets.Total
	}
	return projected, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
