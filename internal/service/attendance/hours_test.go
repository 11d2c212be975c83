package attendance

import (
	"testing"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDayShift() shift.Shift {
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

func testNightShift() shift.Shift {
	return shift.Shift{
		ID:            "night",
		Name:          "Ca đêm",
		StartTime:     "20:00",
		OfficeEndTime: "05:00",
		EndTime:       "05:30",
		BreakMinutes:  45,
		WorkDays:      []int{0, 1, 2, 3, 4, 5, 6},
	}
}

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func localTime(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

func TestNightOverlapMinutes(t *testing.T) {
	t.Parallel()

	workDate := localDate(2025, 3, 10)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{
			name:  "fully outside the night window",
			start: localTime(2025, 3, 10, 8, 0),
			end:   localTime(2025, 3, 10, 17, 0),
			want:  0,
		},
		{
			name:  "full overnight span 20:00 to 08:00 covers the whole window",
			start: localTime(2025, 3, 10, 20, 0),
			end:   localTime(2025, 3, 11, 8, 0),
			want:  480, // 22:00-24:00 plus 00:00-06:00
		},
		{
			name:  "evening partial",
			start: localTime(2025, 3, 10, 21, 0),
			end:   localTime(2025, 3, 10, 23, 0),
			want:  60,
		},
		{
			name:  "morning partial past the window end",
			start: localTime(2025, 3, 11, 4, 0),
			end:   localTime(2025, 3, 11, 7, 0),
			want:  120,
		},
		{
			name:  "interval straddling midnight",
			start: localTime(2025, 3, 10, 23, 30),
			end:   localTime(2025, 3, 11, 1, 30),
			want:  120,
		},
		{
			name:  "empty interval",
			start: localTime(2025, 3, 10, 23, 0),
			end:   localTime(2025, 3, 10, 23, 0),
			want:  0,
		},
		{
			name:  "inverted interval yields zero, not negative",
			start: localTime(2025, 3, 11, 2, 0),
			end:   localTime(2025, 3, 10, 23, 0),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightOverlapMinutes(tt.start, tt.end, workDate)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScheduledShiftHours(t *testing.T) {
	t.Parallel()

	t.Run("day shift", func(t *testing.T) {
		got, err := ScheduledShiftHours(testDayShift())
		require.NoError(t, err)
		assert.InDelta(t, 8.0, got, 1e-9) // 9h span minus 1h break
	})

	t.Run("overnight shift crosses midnight", func(t *testing.T) {
		got, err := ScheduledShiftHours(testNightShift())
		require.NoError(t, err)
		assert.InDelta(t, 8.25, got, 1e-9) // 20:00-05:00 is 9h, minus 45min break
	})

	t.Run("break larger than span floors at zero", func(t *testing.T) {
		sh := testDayShift()
		sh.OfficeEndTime = "08:30"
		sh.EndTime = "08:30"
		got, err := ScheduledShiftHours(sh)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("invalid clock time", func(t *testing.T) {
		sh := testDayShift()
		sh.StartTime = "8h00"
		_, err := ScheduledShiftHours(sh)
		assert.ErrorIs(t, err, shift.ErrInvalidClockTime)
	})
}

func TestLegacyApportion(t *testing.T) {
	t.Parallel()

	t.Run("weekday within the standard cap", func(t *testing.T) {
		// Monday
		got, err := LegacyApportion(testDayShift(), localDate(2025, 3, 10), nil)
		require.NoError(t, err)

		assert.InDelta(t, 8.0, got.Standard, 1e-9)
		assert.Zero(t, got.OT)
		assert.Zero(t, got.Sunday)
		assert.Zero(t, got.Night)
		assert.InDelta(t, 8.0, got.Total, 1e-9)
		assert.False(t, got.Holiday)
	})

	t.Run("long shift spills past the cap into overtime", func(t *testing.T) {
		sh := testDayShift()
		sh.OfficeEndTime = "19:00" // 11h span, 1h break, 10h total
		sh.EndTime = "19:00"
		got, err := LegacyApportion(sh, localDate(2025, 3, 10), nil)
		require.NoError(t, err)

		assert.InDelta(t, 8.0, got.Standard, 1e-9)
		assert.InDelta(t, 2.0, got.OT, 1e-9)
		assert.InDelta(t, 10.0, got.Total, 1e-9)
	})

	t.Run("sunday mirrors the total", func(t *testing.T) {
		got, err := LegacyApportion(testDayShift(), localDate(2025, 3, 9), nil)
		require.NoError(t, err)
		assert.InDelta(t, got.Total, got.Sunday, 1e-9)
	})

	t.Run("overnight shift accrues night hours", func(t *testing.T) {
		got, err := LegacyApportion(testNightShift(), localDate(2025, 3, 10), nil)
		require.NoError(t, err)
		// Scheduled 20:00-05:30: 22:00-24:00 plus 00:00-05:30 overlap.
		assert.InDelta(t, 7.5, got.Night, 1e-9)
	})

	t.Run("holiday flag from the calendar", func(t *testing.T) {
		holidays := []holiday.PublicHoliday{{Date: "2025-04-30", Name: "Ngày Giải phóng"}}
		got, err := LegacyApportion(testDayShift(), localDate(2025, 4, 30), holidays)
		require.NoError(t, err)
		assert.True(t, got.Holiday)
	})
}
