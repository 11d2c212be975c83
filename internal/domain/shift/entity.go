package shift

import "time"

// Shift is a recurring work schedule template. All clock fields are wall-clock
// "HH:MM" strings with no date attached; whether a concrete day's instance
// crosses midnight is derived per use, never stored.
type Shift struct {
	ID            string
	Name          string
	StartTime     string // "HH:MM"
	OfficeEndTime string // nominal end, standard-hours boundary
	EndTime       string // actual end including built-in overtime allowance
	DepartureTime string // pre-shift travel reminder anchor
	BreakMinutes  int
	IsNightShift  bool // cached display hint, refreshed on edit; engine recomputes
	WorkDays      []int // 0=Sunday .. 6=Saturday
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var dayMnemonics = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WorkDayMnemonics returns the 3-letter view of WorkDays, parallel to the
// numeric set.
func (s Shift) WorkDayMnemonics() []string {
	out := make([]string, 0, len(s.WorkDays))
	for _, d := range s.WorkDays {
		if d >= 0 && d <= 6 {
			out = append(out, dayMnemonics[d])
		}
	}
	return out
}

// AppliesOn reports whether the shift is active on the given weekday.
func (s Shift) AppliesOn(weekday time.Weekday) bool {
	for _, d := range s.WorkDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}
