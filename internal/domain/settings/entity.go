package settings

import "time"

// ButtonMode selects how many interactive steps the attendance button walks
// through in a day.
type ButtonMode string

const (
	ButtonModeFull   ButtonMode = "full"
	ButtonModeSimple ButtonMode = "simple"
)

var ButtonModeValues = []string{
	string(ButtonModeFull),
	string(ButtonModeSimple),
}

// Defaults applied when the stored settings row carries zero values.
const (
	DefaultLateThresholdMinutes      = 5
	DefaultRapidPressThresholdSecond = 60
)

// UserSettings is configuration consumed read-only by the attendance engine.
type UserSettings struct {
	LateThresholdMinutes      int
	RapidPressThresholdSecond int
	MultiButtonMode           ButtonMode
	ActiveShiftID             *string
	UpdatedAt                 time.Time
}

// RapidPressThreshold returns the anomaly threshold as a duration, falling
// back to the default when unset.
func (s UserSettings) RapidPressThreshold() time.Duration {
	sec := s.RapidPressThresholdSecond
	if sec <= 0 {
		sec = DefaultRapidPressThresholdSecond
	}
	return time.Duration(sec) * time.Second
}

// LateThreshold returns the late tolerance as a duration.
func (s UserSettings) LateThreshold() time.Duration {
	return time.Duration(s.LateThresholdMinutes) * time.Minute
}
