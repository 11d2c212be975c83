package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
)

// FinalizeLookbackDays bounds how far back the finalize job sweeps. Days
// older than this are left to manual recalculation.
const FinalizeLookbackDays = 7

// recalculator is the slice of the attendance service the finalize job uses.
type recalculator interface {
	RecalculateFromLogs(ctx context.Context, date string) (attendance.DayStatusResponse, error)
}

// FinalizeMissedDays closes out unfinished days once a new day has begun: a
// day whose logs never reached a terminal punch gets classified from what
// exists, and a scheduled workday with no logs at all is recorded as absent.
// The sweep covers the last FinalizeLookbackDays so the app catches up after
// being offline for a stretch. The job runs hourly but only acts in the
// first hour after midnight; reruns are harmless because a recorded status
// ends each day's check early.
func FinalizeMissedDays(
	svc recalculator,
	logRepo attendance.LogRepository,
	statusRepo attendance.StatusRepository,
	shiftRepo shift.ShiftRepository,
	settingsRepo settings.SettingsRepository,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		now := time.Now()
		if now.Hour() != 0 {
			return nil
		}
		return finalizeSweep(ctx, now, svc, logRepo, statusRepo, shiftRepo, settingsRepo)
	}
}

func finalizeSweep(
	ctx context.Context,
	now time.Time,
	svc recalculator,
	logRepo attendance.LogRepository,
	statusRepo attendance.StatusRepository,
	shiftRepo shift.ShiftRepository,
	settingsRepo settings.SettingsRepository,
) error {
	cfg, err := settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if cfg.ActiveShiftID == nil || *cfg.ActiveShiftID == "" {
		return nil
	}
	sh, err := shiftRepo.GetByID(ctx, *cfg.ActiveShiftID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get active shift: %w", err)
	}

	yesterday := now.AddDate(0, 0, -1)
	oldest := now.AddDate(0, 0, -FinalizeLookbackDays)

	loggedDates, err := logRepo.ListDatesWithLogs(ctx,
		oldest.Format("2006-01-02"), yesterday.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to list logged dates: %w", err)
	}
	hasLogs := make(map[string]bool, len(loggedDates))
	for _, d := range loggedDates {
		hasLogs[d] = true
	}

	for day := oldest; !day.After(yesterday); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")

		existing, err := statusRepo.GetByDate(ctx, date)
		if err == nil {
			if existing.IsManualOverride || existing.Status.IsWorked() {
				continue
			}
		} else if !errors.Is(err, attendance.ErrStatusNotFound) {
			return fmt.Errorf("failed to get status: %w", err)
		}

		if !hasLogs[date] && !sh.AppliesOn(day.Weekday()) {
			continue
		}

		// An overnight cycle may still be live past midnight; leave the day
		// alone until its window fully closes.
		overnight, err := sh.IsOvernight()
		if err != nil {
			return err
		}
		if overnight {
			st, err := shift.BuildScheduledTimes(sh, shift.StartOfDay(day))
			if err != nil {
				return err
			}
			if !now.After(st.End.Add(shift.ActiveWindowTail)) {
				continue
			}
		}

		if _, err := svc.RecalculateFromLogs(ctx, date); err != nil {
			var rapidPress *attendance.RapidPressError
			if errors.As(err, &rapidPress) {
				// Needs a human decision; surface it and move on.
				slog.Warn("finalize skipped: rapid-press anomaly awaiting confirmation",
					"date", date,
					"actual_duration", rapidPress.ActualDuration,
				)
				continue
			}
			return fmt.Errorf("failed to finalize %s: %w", date, err)
		}

		slog.Info("finalized missed day", "date", date)
	}
	return nil
}
