package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date, name, created_at FROM public_holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Add implements holiday.HolidayRepository.
func (r *holidayRepository) Add(ctx context.Context, h holiday.PublicHoliday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (date, name)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
	`

	if _, err := q.Exec(ctx, query, h.Date, h.Name); err != nil {
		return fmt.Errorf("failed to add holiday: %w", err)
	}
	return nil
}

// DeleteByDate implements holiday.HolidayRepository.
func (r *holidayRepository) DeleteByDate(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE date = $1`, date); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
