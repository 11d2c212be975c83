package holiday

import "time"

// PublicHoliday marks one calendar date as a public holiday; work on it is
// flagged as holiday work by the classifier.
type PublicHoliday struct {
	Date      string // YYYY-MM-DD
	Name      string
	CreatedAt time.Time
}

// Contains reports whether date (YYYY-MM-DD) matches a configured holiday.
func Contains(holidays []PublicHoliday, date string) bool {
	for _, h := range holidays {
		if h.Date == date {
			return true
		}
	}
	return false
}
