package holiday

import "context"

// HolidayRepository persists the public-holiday list.
type HolidayRepository interface {
	// List retrieves all configured holidays
	List(ctx context.Context) ([]PublicHoliday, error)

	// Add stores a holiday, replacing any existing entry for the date
	Add(ctx context.Context, holiday PublicHoliday) error

	// DeleteByDate removes the holiday for the given date
	DeleteByDate(ctx context.Context, date string) error
}
