package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() settings.UserSettings {
	return settings.UserSettings{
		LateThresholdMinutes:      5,
		RapidPressThresholdSecond: 60,
		MultiButtonMode:           settings.ButtonModeFull,
	}
}

func TestClassifyDayCompleteWins(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10) // Monday
	logs := []attendance.Log{
		// Punches that would otherwise grade as late and early.
		logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 10, 9, 30)),
		logAt(attendance.LogTypeCheckOut, localTime(2025, 3, 10, 15, 0)),
		logAt(attendance.LogTypeComplete, localTime(2025, 3, 10, 17, 35)),
	}

	got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusDuCong, got.Status)
	assert.Zero(t, got.LateMinutes)
	assert.Zero(t, got.EarlyMinutes)
	assert.InDelta(t, 8.0, got.StandardHours, 1e-9) // scheduled, not actual
	assert.InDelta(t, 0.5, got.OTHours, 1e-9)
	assert.InDelta(t, 8.5, got.TotalHours, 1e-9)
	require.NotNil(t, got.CheckInAt)
	require.NotNil(t, got.CheckOutAt)
}

func TestClassifyDayRapidPress(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10)
	in := localTime(2025, 3, 10, 8, 0)

	t.Run("punches below the threshold abort with a typed error", func(t *testing.T) {
		logs := []attendance.Log{
			logAt(attendance.LogTypeCheckIn, in),
			logAt(attendance.LogTypeCheckOut, in.Add(30*time.Second)),
		}
		_, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.Error(t, err)

		var rapid *attendance.RapidPressError
		require.ErrorAs(t, err, &rapid)
		assert.Equal(t, 30*time.Second, rapid.ActualDuration)
		assert.Equal(t, 60*time.Second, rapid.Threshold)
		assert.Equal(t, in, rapid.CheckInAt)
	})

	t.Run("gap exactly at the threshold passes", func(t *testing.T) {
		logs := []attendance.Log{
			logAt(attendance.LogTypeCheckIn, in),
			logAt(attendance.LogTypeCheckOut, in.Add(60*time.Second)),
		}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		// A one-minute day grades as an early leave, not an anomaly.
		assert.Equal(t, attendance.StatusVeSom, got.Status)
	})
}

func TestClassifyDayGrading(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10)
	day := func(h, m int) time.Time { return localTime(2025, 3, 10, h, m) }

	tests := []struct {
		name         string
		in, out      time.Time
		wantStatus   attendance.Status
		wantLateMin  int
		wantEarlyMin int
	}{
		{"on time both ends", day(7, 58), day(17, 2), attendance.StatusDuCong, 0, 0},
		{"inside the late tolerance", day(8, 5), day(17, 0), attendance.StatusDuCong, 0, 0},
		{"one minute past the tolerance", day(8, 6), day(17, 0), attendance.StatusDiMuon, 6, 0},
		{"left before the slack", day(8, 0), day(16, 29), attendance.StatusVeSom, 0, 31},
		{"slack boundary is not early", day(8, 0), day(16, 30), attendance.StatusDuCong, 0, 0},
		{"late and early combined", day(8, 20), day(16, 0), attendance.StatusDiMuonVeSom, 20, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := []attendance.Log{
				logAt(attendance.LogTypeCheckIn, tt.in),
				logAt(attendance.LogTypeCheckOut, tt.out),
			}
			got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantLateMin, got.LateMinutes)
			assert.Equal(t, tt.wantEarlyMin, got.EarlyMinutes)
			require.NotNil(t, got.CheckInAt)
			assert.Equal(t, tt.in, *got.CheckInAt)
		})
	}
}

func TestClassifyDayHourBuckets(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10)

	t.Run("deviating day uses actual punches", func(t *testing.T) {
		logs := []attendance.Log{
			logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 10, 8, 6)),
			logAt(attendance.LogTypeCheckOut, localTime(2025, 3, 10, 17, 30)),
		}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)

		assert.Equal(t, attendance.StatusDiMuon, got.Status)
		// Standard capped at office end: 08:06-17:00 minus 60min break.
		assert.InDelta(t, 7.9, got.StandardHours, 1e-9)
		assert.InDelta(t, 0.5, got.OTHours, 1e-9)
		assert.InDelta(t, 8.4, got.TotalHours, 1e-9)
		assert.Zero(t, got.NightHours)
	})

	t.Run("check-in after office end earns only worked overtime", func(t *testing.T) {
		logs := []attendance.Log{
			logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 10, 18, 0)),
			logAt(attendance.LogTypeCheckOut, localTime(2025, 3, 10, 19, 0)),
		}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)

		// One hour worked, all of it past office end: no phantom 17:00-18:00.
		assert.Equal(t, attendance.StatusDiMuon, got.Status)
		assert.Zero(t, got.StandardHours)
		assert.InDelta(t, 1.0, got.OTHours, 1e-9)
		assert.InDelta(t, 1.0, got.TotalHours, 1e-9)
	})

	t.Run("overnight full day apportions night hours", func(t *testing.T) {
		logs := []attendance.Log{
			logAt(attendance.LogTypeComplete, localTime(2025, 3, 11, 5, 35)),
		}
		got, err := ClassifyDay(date, logs, testNightShift(), testSettings(), nil)
		require.NoError(t, err)

		assert.Equal(t, attendance.StatusDuCong, got.Status)
		assert.InDelta(t, 8.25, got.StandardHours, 1e-9) // 20:00-05:00 minus 45min break
		assert.InDelta(t, 0.5, got.OTHours, 1e-9)
		assert.InDelta(t, 7.5, got.NightHours, 1e-9)
		assert.InDelta(t, 8.75, got.TotalHours, 1e-9)
	})

	t.Run("sunday hours mirror the total and stay exclusive", func(t *testing.T) {
		sunday := localDate(2025, 3, 9)
		logs := []attendance.Log{
			logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 9, 8, 0)),
			logAt(attendance.LogTypeCheckOut, localTime(2025, 3, 9, 17, 0)),
		}
		got, err := ClassifyDay(sunday, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)

		assert.InDelta(t, got.TotalHours, got.SundayHours, 1e-9)
		// Sunday is a separate bucket, never double-counted into the total.
		assert.InDelta(t, got.StandardHours+got.OTHours, got.TotalHours, 1e-9)
	})

	t.Run("holiday work flag", func(t *testing.T) {
		holidays := []holiday.PublicHoliday{{Date: "2025-03-10", Name: "Test"}}
		logs := []attendance.Log{
			logAt(attendance.LogTypeComplete, localTime(2025, 3, 10, 17, 35)),
		}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), holidays)
		require.NoError(t, err)
		assert.True(t, got.IsHolidayWork)
	})
}

func TestClassifyDayPartialProgress(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10)

	t.Run("only check-in", func(t *testing.T) {
		logs := []attendance.Log{logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 10, 8, 0))}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusChuaRa, got.Status)
		assert.NotNil(t, got.CheckInAt)
		assert.Nil(t, got.CheckOutAt)
		assert.Zero(t, got.TotalHours)
	})

	t.Run("only go-work", func(t *testing.T) {
		logs := []attendance.Log{logAt(attendance.LogTypeGoWork, localTime(2025, 3, 10, 7, 30))}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusDaDiChuaVao, got.Status)
	})

	t.Run("check-out without check-in is unusable", func(t *testing.T) {
		logs := []attendance.Log{logAt(attendance.LogTypeCheckOut, localTime(2025, 3, 10, 17, 0))}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusThieuLog, got.Status)
		assert.Equal(t, attendance.LegacyPending, got.LegacyStatus())
		assert.NotNil(t, got.CheckOutAt)
		assert.Zero(t, got.TotalHours)
	})

	t.Run("lone mid-day punch is unusable", func(t *testing.T) {
		logs := []attendance.Log{logAt(attendance.LogTypePunch, localTime(2025, 3, 10, 12, 0))}
		got, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusThieuLog, got.Status)
		assert.Nil(t, got.CheckOutAt)
	})

	t.Run("no logs at all", func(t *testing.T) {
		got, err := ClassifyDay(date, nil, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusChuaDi, got.Status)
		assert.Zero(t, got.TotalHours)
	})
}

func TestClassifyDayIsPure(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10)
	logs := []attendance.Log{
		logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 10, 8, 6)),
		logAt(attendance.LogTypeCheckOut, localTime(2025, 3, 10, 17, 30)),
	}

	first, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ClassifyDay(date, logs, testDayShift(), testSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyDayConfirmed(t *testing.T) {
	t.Parallel()

	date := localDate(2025, 3, 10)
	in := localTime(2025, 3, 10, 8, 0)
	out := in.Add(30 * time.Second)
	logs := []attendance.Log{
		logAt(attendance.LogTypeCheckIn, in),
		logAt(attendance.LogTypeCheckOut, out),
	}

	got, err := ClassifyDayConfirmed(date, logs, testDayShift(), in, out)
	require.NoError(t, err)

	// Confirmation asserts a full normal day regardless of the punch gap.
	assert.Equal(t, attendance.StatusDuCong, got.Status)
	assert.InDelta(t, 8.0, got.StandardHours, 1e-9)
	assert.InDelta(t, 0.5, got.OTHours, 1e-9)
	assert.InDelta(t, 8.5, got.TotalHours, 1e-9)
	assert.Contains(t, got.Notes, "30s apart")
}

func TestBuildManualStatus(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-manual vocabulary", func(t *testing.T) {
		_, err := BuildManualStatus("2025-03-10", attendance.StatusDuCong, "")
		assert.True(t, errors.Is(err, attendance.ErrInvalidManualStatus))
	})

	t.Run("leave zeroes every bucket", func(t *testing.T) {
		got, err := BuildManualStatus("2025-03-10", attendance.StatusNghiPhep, "nghỉ phép năm")
		require.NoError(t, err)

		assert.Equal(t, attendance.StatusNghiPhep, got.Status)
		assert.True(t, got.IsManualOverride)
		assert.Zero(t, got.StandardHours)
		assert.Zero(t, got.OTHours)
		assert.Zero(t, got.SundayHours)
		assert.Zero(t, got.NightHours)
		assert.Zero(t, got.TotalHours)
		assert.Equal(t, "nghỉ phép năm", got.Notes)
	})

	t.Run("public holiday sets the holiday flag", func(t *testing.T) {
		got, err := BuildManualStatus("2025-03-10", attendance.StatusNghiLe, "")
		require.NoError(t, err)
		assert.True(t, got.IsHolidayWork)
	})
}
