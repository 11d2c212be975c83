package attendance

import (
	"testing"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logAt(lt attendance.LogType, at time.Time) attendance.Log {
	return attendance.Log{ID: string(lt), Date: at.Format("2006-01-02"), Type: lt, At: at}
}

func TestCurrentButtonStateFullMode(t *testing.T) {
	t.Parallel()

	sh := testDayShift() // 08:00-17:30, window 07:00-19:30
	day := func(h, m int) time.Time { return localTime(2025, 3, 10, h, m) }

	goWork := logAt(attendance.LogTypeGoWork, day(7, 30))
	checkIn := logAt(attendance.LogTypeCheckIn, day(8, 2))
	checkOut := logAt(attendance.LogTypeCheckOut, day(17, 5))
	complete := logAt(attendance.LogTypeComplete, day(17, 35))

	tests := []struct {
		name string
		logs []attendance.Log
		now  time.Time
		want ButtonState
	}{
		{"outside window", nil, day(6, 0), ButtonGoWork},
		{"outside window ignores logged progress", []attendance.Log{goWork, checkIn}, day(23, 0), ButtonGoWork},
		{"reset interval snaps back", []attendance.Log{goWork}, day(7, 30), ButtonGoWork},
		{"within window, nothing logged", nil, day(8, 10), ButtonGoWork},
		{"near start lights check-in", []attendance.Log{goWork}, day(8, 10), ButtonCheckIn},
		{"proximity boundary inclusive", []attendance.Log{goWork}, day(8, 30), ButtonCheckIn},
		{"past proximity waits", []attendance.Log{goWork}, day(9, 0), ButtonAwaitingCheckIn},
		{"mid-shift working", []attendance.Log{goWork, checkIn}, day(12, 0), ButtonWorking},
		{"half hour before office end lights check-out", []attendance.Log{goWork, checkIn}, day(16, 30), ButtonCheckOut},
		{"after office end still check-out", []attendance.Log{goWork, checkIn}, day(17, 30), ButtonCheckOut},
		{"checked out awaits completion", []attendance.Log{goWork, checkIn, checkOut}, day(17, 10), ButtonAwaitingComplete},
		{"full cycle done", []attendance.Log{goWork, checkIn, checkOut, complete}, day(17, 40), ButtonCompletedDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentButtonState(sh, tt.logs, tt.now, settings.ButtonModeFull)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentButtonStateSimpleMode(t *testing.T) {
	t.Parallel()

	sh := testDayShift()
	day := func(h, m int) time.Time { return localTime(2025, 3, 10, h, m) }
	goWork := logAt(attendance.LogTypeGoWork, day(8, 5))

	tests := []struct {
		name string
		logs []attendance.Log
		now  time.Time
		want ButtonState
	}{
		{"outside window", []attendance.Log{goWork}, day(5, 0), ButtonGoWork},
		{"reset interval", []attendance.Log{goWork}, day(7, 45), ButtonGoWork},
		{"not yet tapped", nil, day(9, 0), ButtonGoWork},
		{"single tap completes the day", []attendance.Log{goWork}, day(9, 0), ButtonCompletedDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentButtonState(sh, tt.logs, tt.now, settings.ButtonModeSimple)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentButtonStateOvernight(t *testing.T) {
	t.Parallel()

	sh := testNightShift() // 20:00-05:30 next day

	goWork := logAt(attendance.LogTypeGoWork, localTime(2025, 3, 10, 19, 30))
	checkIn := logAt(attendance.LogTypeCheckIn, localTime(2025, 3, 10, 20, 1))

	t.Run("after midnight the cycle is still interactive", func(t *testing.T) {
		got, err := CurrentButtonState(sh, []attendance.Log{goWork, checkIn}, localTime(2025, 3, 11, 2, 0), settings.ButtonModeFull)
		require.NoError(t, err)
		assert.Equal(t, ButtonWorking, got)
	})

	t.Run("check-out lights before the overnight office end", func(t *testing.T) {
		got, err := CurrentButtonState(sh, []attendance.Log{goWork, checkIn}, localTime(2025, 3, 11, 4, 45), settings.ButtonModeFull)
		require.NoError(t, err)
		assert.Equal(t, ButtonCheckOut, got)
	})
}

func TestCurrentButtonStateIsPure(t *testing.T) {
	t.Parallel()

	sh := testDayShift()
	logs := []attendance.Log{logAt(attendance.LogTypeGoWork, localTime(2025, 3, 10, 7, 55))}
	now := localTime(2025, 3, 10, 8, 10)

	first, err := CurrentButtonState(sh, logs, now, settings.ButtonModeFull)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := CurrentButtonState(sh, logs, now, settings.ButtonModeFull)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
