package attendance

import "context"

// LogRepository defines data access for punch logs.
type LogRepository interface {
	// Add stores a punch log
	Add(ctx context.Context, log Log) (Log, error)

	// ListByDate retrieves a date's logs ordered by time
	ListByDate(ctx context.Context, date string) ([]Log, error)

	// DeleteByDate removes all logs for a date
	DeleteByDate(ctx context.Context, date string) error

	// ListDatesWithLogs returns distinct dates having logs inside [from, to]
	ListDatesWithLogs(ctx context.Context, from, to string) ([]string, error)
}

// StatusRepository defines data access for daily status records, keyed by
// date string.
type StatusRepository interface {
	// Upsert creates or replaces the status record for its date
	Upsert(ctx context.Context, status DayStatus) (DayStatus, error)

	// GetByDate retrieves the status record for a date
	GetByDate(ctx context.Context, date string) (DayStatus, error)

	// ListByMonth retrieves all status records for a YYYY-MM month
	ListByMonth(ctx context.Context, month string) ([]DayStatus, error)

	// DeleteByDate removes the status record for a date
	DeleteByDate(ctx context.Context, date string) error
}
