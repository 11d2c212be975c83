package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayShift() Shift {
	return Shift{
		ID:            "day",
		Name:          "Ca hành chính",
		StartTime:     "08:00",
		OfficeEndTime: "17:00",
		EndTime:       "17:30",
		DepartureTime: "07:15",
		BreakMinutes:  60,
		WorkDays:      []int{1, 2, 3, 4, 5},
	}
}

func nightShift() Shift {
	return Shift{
		ID:            "night",
		Name:          "Ca đêm",
		StartTime:     "20:00",
		OfficeEndTime: "05:00",
		EndTime:       "05:30",
		DepartureTime: "19:00",
		BreakMinutes:  45,
		WorkDays:      []int{0, 1, 2, 3, 4, 5, 6},
	}
}

func TestParseClockMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{" 09:15 ", 555, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"8am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockMinutes(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsOvernight(t *testing.T) {
	t.Parallel()

	t.Run("day shift", func(t *testing.T) {
		overnight, err := dayShift().IsOvernight()
		require.NoError(t, err)
		assert.False(t, overnight)
	})

	t.Run("night shift", func(t *testing.T) {
		overnight, err := nightShift().IsOvernight()
		require.NoError(t, err)
		assert.True(t, overnight)
	})

	t.Run("ignores stale cached flag", func(t *testing.T) {
		// The stored hint says night, but the raw times say day. The raw
		// times win.
		sh := dayShift()
		sh.IsNightShift = true
		overnight, err := sh.IsOvernight()
		require.NoError(t, err)
		assert.False(t, overnight)
	})

	t.Run("invalid start time", func(t *testing.T) {
		sh := dayShift()
		sh.StartTime = "25:00"
		_, err := sh.IsOvernight()
		assert.ErrorIs(t, err, ErrInvalidClockTime)
	})
}

func TestBuildScheduledTimes(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	t.Run("same-day shift stays on the work date", func(t *testing.T) {
		st, err := BuildScheduledTimes(dayShift(), date)
		require.NoError(t, err)

		assert.False(t, st.Overnight)
		assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local), st.Start)
		assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local), st.OfficeEnd)
		assert.Equal(t, time.Date(2025, 3, 10, 17, 30, 0, 0, time.Local), st.End)
	})

	t.Run("overnight shift anchors both ends to the next day", func(t *testing.T) {
		st, err := BuildScheduledTimes(nightShift(), date)
		require.NoError(t, err)

		assert.True(t, st.Overnight)
		assert.Equal(t, time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local), st.Start)
		assert.Equal(t, time.Date(2025, 3, 11, 5, 0, 0, 0, time.Local), st.OfficeEnd)
		assert.Equal(t, time.Date(2025, 3, 11, 5, 30, 0, 0, time.Local), st.End)
		assert.True(t, st.Start.Before(st.OfficeEnd))
		assert.True(t, st.OfficeEnd.Before(st.End))
	})

	t.Run("time-of-day on the input date is irrelevant", func(t *testing.T) {
		afternoon := time.Date(2025, 3, 10, 15, 42, 11, 0, time.Local)
		st1, err := BuildScheduledTimes(dayShift(), date)
		require.NoError(t, err)
		st2, err := BuildScheduledTimes(dayShift(), afternoon)
		require.NoError(t, err)
		assert.Equal(t, st1, st2)
	})

	t.Run("invalid office end time", func(t *testing.T) {
		sh := dayShift()
		sh.OfficeEndTime = "17-00"
		_, err := BuildScheduledTimes(sh, date)
		assert.ErrorIs(t, err, ErrInvalidClockTime)
	})
}

func TestWorkDayMnemonics(t *testing.T) {
	t.Parallel()

	sh := dayShift()
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, sh.WorkDayMnemonics())

	sh.WorkDays = []int{0, 6, 9}
	assert.Equal(t, []string{"Sun", "Sat"}, sh.WorkDayMnemonics())
}

func TestAppliesOn(t *testing.T) {
	t.Parallel()

	sh := dayShift()
	assert.True(t, sh.AppliesOn(time.Monday))
	assert.False(t, sh.AppliesOn(time.Sunday))
	assert.False(t, sh.AppliesOn(time.Saturday))
}
