package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"midnight", "00:00", true},
		{"morning", "08:30", true},
		{"last minute of day", "23:59", true},
		{"with surrounding spaces", " 07:15 ", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "08:60", false},
		{"missing leading zero", "8:30", false},
		{"with seconds", "08:30:00", false},
		{"empty", "", false},
		{"garbage", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidClockTime(tt.input))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2025-01-15")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("15-01-2025")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2025-01"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-01-15"))
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDateTime("2025-01-15T08:00:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-01-15T08:00:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-01-15 08:00:00")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "status", Message: "unknown status"},
	}

	m := errs.ToMap()
	assert.Equal(t, "date is required", m["date"])
	assert.Equal(t, "unknown status", m["status"])
	assert.Contains(t, errs.Error(), "date: date is required")
}
