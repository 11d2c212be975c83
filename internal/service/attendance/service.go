package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
	"github.com/chamcong-app/chamcong-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Manual time-edit validation bounds. Durations outside [1h, 16h] or punches
// further than the slack from the scheduled boundaries are rejected instead
// of producing nonsensical hour buckets.
const (
	ManualEditMinDuration   = 1 * time.Hour
	ManualEditMaxDuration   = 16 * time.Hour
	ManualEditBoundarySlack = 4 * time.Hour
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.LogRepository
	attendance.StatusRepository
	shift.ShiftRepository
	settings.SettingsRepository
	holiday.HolidayRepository
}

func NewAttendanceService(
	db *database.DB,
	logRepo attendance.LogRepository,
	statusRepo attendance.StatusRepository,
	shiftRepo shift.ShiftRepository,
	settingsRepo settings.SettingsRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                 db,
		LogRepository:      logRepo,
		StatusRepository:   statusRepo,
		ShiftRepository:    shiftRepo,
		SettingsRepository: settingsRepo,
		HolidayRepository:  holidayRepo,
	}
}

// ButtonState implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ButtonState(ctx context.Context, now time.Time) (attendance.ButtonStateResponse, error) {
	cfg, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.ButtonStateResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}

	sh, err := a.activeShift(ctx, cfg)
	if err != nil {
		return attendance.ButtonStateResponse{}, err
	}

	workDate, err := workDateFor(sh, now)
	if err != nil {
		return attendance.ButtonStateResponse{}, err
	}

	logs, err := a.LogRepository.ListByDate(ctx, workDate)
	if err != nil {
		return attendance.ButtonStateResponse{}, fmt.Errorf("failed to list logs: %w", err)
	}

	state, err := CurrentButtonState(sh, logs, now, cfg.MultiButtonMode)
	if err != nil {
		return attendance.ButtonStateResponse{}, err
	}

	within, err := shift.IsWithinActiveWindow(sh, now)
	if err != nil {
		return attendance.ButtonStateResponse{}, err
	}

	return attendance.ButtonStateResponse{
		State:       string(state),
		Mode:        string(cfg.MultiButtonMode),
		ShiftID:     sh.ID,
		ShiftName:   sh.Name,
		WithinAhead: within,
	}, nil
}

// Punch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	at := time.Now()
	if req.At != nil {
		parsed, err := time.Parse(time.RFC3339, *req.At)
		if err != nil {
			return attendance.PunchResponse{}, fmt.Errorf("failed to parse punch time: %w", err)
		}
		at = parsed
	}

	cfg, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}

	sh, err := a.activeShift(ctx, cfg)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	workDate, err := workDateFor(sh, at)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	logs, err := a.LogRepository.ListByDate(ctx, workDate)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to list logs: %w", err)
	}

	logType := attendance.LogType(req.Type)
	set := attendance.CollectDaySet(logs)
	if hasLogOfType(set, logType) {
		return attendance.PunchResponse{}, attendance.ErrDuplicateLog
	}
	if logType.Rank() <= set.MaxRank() {
		return attendance.PunchResponse{}, attendance.ErrLogOutOfOrder
	}

	stored, err := a.LogRepository.Add(ctx, attendance.Log{
		ID:   uuid.NewString(),
		Date: workDate,
		Type: logType,
		At:   at,
	})
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to store log: %w", err)
	}
	logs = append(logs, stored)

	resp := attendance.PunchResponse{Log: mapLogToResponse(stored)}

	// Terminal punches produce a persisted status. A rapid-press anomaly
	// propagates after the raw log is stored: the event happened, but the
	// outcome awaits user confirmation.
	if logType == attendance.LogTypeCheckOut || logType == attendance.LogTypeComplete {
		date, _ := time.ParseInLocation("2006-01-02", workDate, time.Local)

		holidays, err := a.HolidayRepository.List(ctx)
		if err != nil {
			return attendance.PunchResponse{}, fmt.Errorf("failed to list holidays: %w", err)
		}

		result, err := ClassifyDay(date, logs, sh, cfg, holidays)
		if err != nil {
			return attendance.PunchResponse{}, err
		}

		persisted, err := a.persistStatus(ctx, result)
		if err != nil {
			return attendance.PunchResponse{}, err
		}
		statusResp := mapStatusToResponse(persisted)
		resp.DayStatus = &statusResp
	}

	state, err := CurrentButtonState(sh, logs, at, cfg.MultiButtonMode)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	resp.ButtonState = string(state)

	return resp, nil
}

// ConfirmRapidPress implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ConfirmRapidPress(ctx context.Context, req attendance.ConfirmRapidPressRequest) (attendance.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayStatusResponse{}, err
	}

	logs, err := a.LogRepository.ListByDate(ctx, req.Date)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list logs: %w", err)
	}

	set := attendance.CollectDaySet(logs)
	if set.CheckIn == nil || set.CheckOut == nil {
		return attendance.DayStatusResponse{}, attendance.ErrNoRapidPressPending
	}

	confirmedIn := set.CheckIn.At
	confirmedOut := set.CheckOut.At
	if req.CheckInAt != nil {
		confirmedIn, _ = time.Parse(time.RFC3339, *req.CheckInAt)
	}
	if req.CheckOutAt != nil {
		confirmedOut, _ = time.Parse(time.RFC3339, *req.CheckOutAt)
	}

	sh, err := a.governingShift(ctx, req.Date)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	result, err := ClassifyDayConfirmed(date, logs, sh, confirmedIn, confirmedOut)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	persisted, err := a.persistStatus(ctx, result)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}
	return mapStatusToResponse(persisted), nil
}

// LogsForDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) LogsForDate(ctx context.Context, date string) ([]attendance.LogResponse, error) {
	logs, err := a.LogRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	responses := make([]attendance.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, mapLogToResponse(l))
	}
	return responses, nil
}

// StatusesForMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StatusesForMonth(ctx context.Context, month string) ([]attendance.DayStatusResponse, error) {
	statuses, err := a.StatusRepository.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	responses := make([]attendance.DayStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		responses = append(responses, mapStatusToResponse(s))
	}
	return responses, nil
}

// SetManualStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SetManualStatus(ctx context.Context, req attendance.ManualStatusRequest) (attendance.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayStatusResponse{}, err
	}

	status := attendance.Status(req.Status)
	if status == attendance.CommandRecalculate || status == attendance.CommandClearManual {
		return a.RecalculateFromLogs(ctx, req.Date)
	}

	result, err := BuildManualStatus(req.Date, status, req.Notes)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	persisted, err := a.persistStatus(ctx, result)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}
	return mapStatusToResponse(persisted), nil
}

// RecalculateFromLogs implements attendance.AttendanceService. It restores
// the date to computed provenance, clearing any manual override.
func (a *AttendanceServiceImpl) RecalculateFromLogs(ctx context.Context, date string) (attendance.DayStatusResponse, error) {
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	sh, err := a.governingShift(ctx, date)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	cfg, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}

	logs, err := a.LogRepository.ListByDate(ctx, date)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list logs: %w", err)
	}

	holidays, err := a.HolidayRepository.List(ctx)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	result, err := ClassifyDay(parsed, logs, sh, cfg, holidays)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}
	result.IsManualOverride = false

	persisted, err := a.persistStatus(ctx, result)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}
	return mapStatusToResponse(persisted), nil
}

// UpdateAttendanceTime implements attendance.AttendanceService. The day's
// logs are replaced wholesale with a synthetic check-in/check-out pair at the
// user-supplied times, then the date is recalculated.
func (a *AttendanceServiceImpl) UpdateAttendanceTime(ctx context.Context, req attendance.UpdateAttendanceTimeRequest) (attendance.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayStatusResponse{}, err
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckInAt)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to parse check_in_at: %w", err)
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOutAt)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to parse check_out_at: %w", err)
	}

	if !checkOut.After(checkIn) {
		return attendance.DayStatusResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}
	duration := checkOut.Sub(checkIn)
	if duration < ManualEditMinDuration {
		return attendance.DayStatusResponse{}, attendance.ErrDurationTooShort
	}
	if duration > ManualEditMaxDuration {
		return attendance.DayStatusResponse{}, attendance.ErrDurationTooLong
	}

	sh, err := a.governingShift(ctx, req.Date)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	st, err := shift.BuildScheduledTimes(sh, date)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}
	if checkIn.Before(st.Start.Add(-ManualEditBoundarySlack)) || checkOut.After(st.End.Add(ManualEditBoundarySlack)) {
		return attendance.DayStatusResponse{}, attendance.ErrOutsideShiftBounds
	}

	// The wipe and the replacement pair must land together.
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.LogRepository.DeleteByDate(txCtx, req.Date); err != nil {
			return fmt.Errorf("failed to clear logs: %w", err)
		}

		for _, l := range []attendance.Log{
			{ID: uuid.NewString(), Date: req.Date, Type: attendance.LogTypeCheckIn, At: checkIn},
			{ID: uuid.NewString(), Date: req.Date, Type: attendance.LogTypeCheckOut, At: checkOut},
		} {
			if _, err := a.LogRepository.Add(txCtx, l); err != nil {
				return fmt.Errorf("failed to store synthetic log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	return a.RecalculateFromLogs(ctx, req.Date)
}

// DeleteStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteStatus(ctx context.Context, date string) error {
	if err := a.StatusRepository.DeleteByDate(ctx, date); err != nil {
		if errors.Is(err, attendance.ErrStatusNotFound) {
			return attendance.ErrStatusNotFound
		}
		return fmt.Errorf("failed to delete status: %w", err)
	}
	return nil
}

// activeShift resolves the globally active shift from settings. A missing
// pointer is reported as ErrNoActiveShift, distinct from any classification
// outcome: without a shift the whole window concept is undefined.
func (a *AttendanceServiceImpl) activeShift(ctx context.Context, cfg settings.UserSettings) (shift.Shift, error) {
	if cfg.ActiveShiftID == nil || *cfg.ActiveShiftID == "" {
		return shift.Shift{}, shift.ErrNoActiveShift
	}
	sh, err := a.ShiftRepository.GetByID(ctx, *cfg.ActiveShiftID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.Shift{}, shift.ErrNoActiveShift
		}
		return shift.Shift{}, fmt.Errorf("failed to get active shift: %w", err)
	}
	return sh, nil
}

// governingShift resolves which shift governs a specific date: a per-day
// override stored on the status record wins over the globally active shift.
func (a *AttendanceServiceImpl) governingShift(ctx context.Context, date string) (shift.Shift, error) {
	existing, err := a.StatusRepository.GetByDate(ctx, date)
	if err == nil && existing.AppliedShiftID != nil && *existing.AppliedShiftID != "" {
		sh, err := a.ShiftRepository.GetByID(ctx, *existing.AppliedShiftID)
		if err == nil {
			return sh, nil
		}
		if !errors.Is(err, shift.ErrShiftNotFound) {
			return shift.Shift{}, fmt.Errorf("failed to get applied shift: %w", err)
		}
	} else if err != nil && !errors.Is(err, attendance.ErrStatusNotFound) {
		return shift.Shift{}, fmt.Errorf("failed to get status: %w", err)
	}

	cfg, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return a.activeShift(ctx, cfg)
}

// workDateFor attributes an instant to its nominal work date. For overnight
// shifts a punch after midnight belongs to the instance that started the
// previous evening.
func workDateFor(sh shift.Shift, at time.Time) (string, error) {
	anchor, err := shift.InstanceAnchor(sh, at)
	if err != nil {
		return "", err
	}
	return anchor.Format("2006-01-02"), nil
}

// persistStatus upserts a status record, carrying over a pre-existing
// per-day shift override.
func (a *AttendanceServiceImpl) persistStatus(ctx context.Context, result attendance.DayStatus) (attendance.DayStatus, error) {
	existing, err := a.StatusRepository.GetByDate(ctx, result.Date)
	if err == nil && existing.AppliedShiftID != nil {
		result.AppliedShiftID = existing.AppliedShiftID
	} else if err != nil && !errors.Is(err, attendance.ErrStatusNotFound) {
		return attendance.DayStatus{}, fmt.Errorf("failed to get status: %w", err)
	}

	persisted, err := a.StatusRepository.Upsert(ctx, result)
	if err != nil {
		return attendance.DayStatus{}, fmt.Errorf("failed to upsert status: %w", err)
	}
	return persisted, nil
}

func hasLogOfType(set attendance.DaySet, t attendance.LogType) bool {
	switch t {
	case attendance.LogTypeGoWork:
		return set.GoWork != nil
	case attendance.LogTypeCheckIn:
		return set.CheckIn != nil
	case attendance.LogTypePunch:
		return set.Punch != nil
	case attendance.LogTypeCheckOut:
		return set.CheckOut != nil
	case attendance.LogTypeComplete:
		return set.Complete != nil
	}
	return false
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func mapLogToResponse(l attendance.Log) attendance.LogResponse {
	return attendance.LogResponse{
		ID:   l.ID,
		Date: l.Date,
		Type: string(l.Type),
		At:   l.At.Format(time.RFC3339),
	}
}

func mapStatusToResponse(s attendance.DayStatus) attendance.DayStatusResponse {
	return attendance.DayStatusResponse{
		Date:             s.Date,
		Status:           string(s.Status),
		LegacyStatus:     string(s.LegacyStatus()),
		AppliedShiftID:   s.AppliedShiftID,
		CheckInAt:        timePtrToString(s.CheckInAt),
		CheckOutAt:       timePtrToString(s.CheckOutAt),
		StandardHours:    s.StandardHours,
		OTHours:          s.OTHours,
		SundayHours:      s.SundayHours,
		NightHours:       s.NightHours,
		TotalHours:       s.TotalHours,
		LateMinutes:      s.LateMinutes,
		EarlyMinutes:     s.EarlyMinutes,
		IsHolidayWork:    s.IsHolidayWork,
		IsManualOverride: s.IsManualOverride,
		Notes:            s.Notes,
	}
}
