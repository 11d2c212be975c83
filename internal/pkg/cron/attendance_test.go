package cron

import (
	"context"
	"testing"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecalc struct {
	dates []string
	fail  map[string]error
}

func (f *fakeRecalc) RecalculateFromLogs(_ context.Context, date string) (attendance.DayStatusResponse, error) {
	if err := f.fail[date]; err != nil {
		return attendance.DayStatusResponse{}, err
	}
	f.dates = append(f.dates, date)
	return attendance.DayStatusResponse{}, nil
}

type fakeLogRepo struct {
	loggedDates    []string
	gotFrom, gotTo string
}

func (f *fakeLogRepo) Add(_ context.Context, log attendance.Log) (attendance.Log, error) {
	return log, nil
}

func (f *fakeLogRepo) ListByDate(_ context.Context, _ string) ([]attendance.Log, error) {
	return nil, nil
}

func (f *fakeLogRepo) DeleteByDate(_ context.Context, _ string) error { return nil }

func (f *fakeLogRepo) ListDatesWithLogs(_ context.Context, from, to string) ([]string, error) {
	f.gotFrom, f.gotTo = from, to
	return f.loggedDates, nil
}

type fakeStatusRepo struct {
	byDate map[string]attendance.DayStatus
}

func (f *fakeStatusRepo) Upsert(_ context.Context, status attendance.DayStatus) (attendance.DayStatus, error) {
	return status, nil
}

func (f *fakeStatusRepo) GetByDate(_ context.Context, date string) (attendance.DayStatus, error) {
	if st, ok := f.byDate[date]; ok {
		return st, nil
	}
	return attendance.DayStatus{}, attendance.ErrStatusNotFound
}

func (f *fakeStatusRepo) ListByMonth(_ context.Context, _ string) ([]attendance.DayStatus, error) {
	return nil, nil
}

func (f *fakeStatusRepo) DeleteByDate(_ context.Context, _ string) error { return nil }

type fakeShiftRepo struct {
	sh shift.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, sh shift.Shift) (shift.Shift, error) {
	return sh, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	if id != f.sh.ID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return f.sh, nil
}

func (f *fakeShiftRepo) List(_ context.Context) ([]shift.Shift, error) { return nil, nil }
func (f *fakeShiftRepo) Update(_ context.Context, _ shift.Shift) error { return nil }
func (f *fakeShiftRepo) Delete(_ context.Context, _ string) error      { return nil }

type fakeSettingsRepo struct {
	cfg settings.UserSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.UserSettings, error) {
	return f.cfg, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, _ settings.UserSettings) error { return nil }

func cronDayShift() shift.Shift {
	return shift.Shift{
		ID:            "day",
		Name:          "Ca hành chính",
		StartTime:     "08:00",
		OfficeEndTime: "17:00",
		EndTime:       "17:30",
		BreakMinutes:  60,
		WorkDays:      []int{1, 2, 3, 4, 5},
	}
}

func activeSettings(id string) settings.UserSettings {
	return settings.UserSettings{ActiveShiftID: &id}
}

func TestFinalizeSweepCatchesUpBacklog(t *testing.T) {
	t.Parallel()

	// Wednesday just after midnight; the sweep covers 03-05 through 03-11.
	now := time.Date(2025, 3, 12, 0, 30, 0, 0, time.Local)

	svc := &fakeRecalc{}
	logRepo := &fakeLogRepo{loggedDates: []string{"2025-03-06"}}
	statusRepo := &fakeStatusRepo{byDate: map[string]attendance.DayStatus{
		"2025-03-07": {Date: "2025-03-07", Status: attendance.StatusDuCong},
		"2025-03-10": {Date: "2025-03-10", Status: attendance.StatusNghiPhep, IsManualOverride: true},
	}}

	err := finalizeSweep(context.Background(), now, svc, logRepo, statusRepo,
		&fakeShiftRepo{sh: cronDayShift()}, &fakeSettingsRepo{cfg: activeSettings("day")})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-05", logRepo.gotFrom)
	assert.Equal(t, "2025-03-11", logRepo.gotTo)
	// Logged Thursday plus the two logless workdays; worked, manual and
	// weekend days are left alone.
	assert.Equal(t, []string{"2025-03-05", "2025-03-06", "2025-03-11"}, svc.dates)
}

func TestFinalizeSweepSkipsRapidPressDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 12, 0, 30, 0, 0, time.Local)

	svc := &fakeRecalc{fail: map[string]error{
		"2025-03-11": &attendance.RapidPressError{ActualDuration: 10 * time.Second},
	}}
	logRepo := &fakeLogRepo{loggedDates: []string{"2025-03-10", "2025-03-11"}}

	err := finalizeSweep(context.Background(), now, svc, logRepo,
		&fakeStatusRepo{}, &fakeShiftRepo{sh: cronDayShift()},
		&fakeSettingsRepo{cfg: activeSettings("day")})
	require.NoError(t, err)

	// The anomalous day is skipped for human confirmation, not fatal.
	assert.Contains(t, svc.dates, "2025-03-10")
	assert.NotContains(t, svc.dates, "2025-03-11")
}

func TestFinalizeSweepNoActiveShift(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 12, 0, 30, 0, 0, time.Local)

	svc := &fakeRecalc{}
	err := finalizeSweep(context.Background(), now, svc, &fakeLogRepo{},
		&fakeStatusRepo{}, &fakeShiftRepo{sh: cronDayShift()}, &fakeSettingsRepo{})
	require.NoError(t, err)
	assert.Empty(t, svc.dates)
}
