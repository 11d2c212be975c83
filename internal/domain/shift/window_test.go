package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWithinActiveWindow(t *testing.T) {
	t.Parallel()

	sh := dayShift() // 08:00 - 17:30, window 07:00 - 19:30
	day := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before window", day(6, 0), false},
		{"one second before window", day(7, 0).Add(-time.Second), false},
		{"window start boundary", day(7, 0), true},
		{"during shift", day(12, 0), true},
		{"window end boundary", day(19, 30), true},
		{"one second after window", day(19, 30).Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsWithinActiveWindow(sh, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWithinActiveWindowOvernight(t *testing.T) {
	t.Parallel()

	sh := nightShift() // 20:00 - 05:30 next day, window 19:00 - 07:30

	t.Run("after midnight still inside the window", func(t *testing.T) {
		// 02:00 belongs to the cycle that started the previous evening; the
		// evaluator must credit yesterday's instance.
		got, err := IsWithinActiveWindow(sh, time.Date(2025, 3, 11, 2, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("post-roll boundary after midnight", func(t *testing.T) {
		// Yesterday's instance ended 05:30, post-roll until 07:30.
		got, err := IsWithinActiveWindow(sh, time.Date(2025, 3, 11, 7, 30, 0, 0, time.Local))
		require.NoError(t, err)
		assert.True(t, got)

		got, err = IsWithinActiveWindow(sh, time.Date(2025, 3, 11, 7, 31, 0, 0, time.Local))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("midday gap between instances", func(t *testing.T) {
		got, err := IsWithinActiveWindow(sh, time.Date(2025, 3, 11, 12, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("evening pre-roll", func(t *testing.T) {
		got, err := IsWithinActiveWindow(sh, time.Date(2025, 3, 10, 19, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestShouldResetButton(t *testing.T) {
	t.Parallel()

	sh := dayShift() // reset interval (07:00, 08:00) exclusive
	day := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before interval", day(6, 59), false},
		{"lower bound excluded", day(7, 0), false},
		{"inside interval", day(7, 30), true},
		{"just inside upper bound", day(7, 59), true},
		{"shift start excluded", day(8, 0), false},
		{"after shift start", day(9, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShouldResetButton(sh, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
