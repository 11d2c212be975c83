package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dayStatusRepository struct {
	db *database.DB
}

func NewDayStatusRepository(db *database.DB) attendance.StatusRepository {
	return &dayStatusRepository{db: db}
}

const dayStatusColumns = `
	date, status, applied_shift_id, check_in_at, check_out_at,
	standard_hours, ot_hours, sunday_hours, night_hours, total_hours,
	late_minutes, early_minutes, is_holiday_work, is_manual_override, notes,
	created_at, updated_at
`

// Upsert implements attendance.StatusRepository. One row per date; replays
// replace the previous record wholesale.
func (r *dayStatusRepository) Upsert(ctx context.Context, status attendance.DayStatus) (attendance.DayStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_statuses (
			date, status, applied_shift_id, check_in_at, check_out_at,
			standard_hours, ot_hours, sunday_hours, night_hours, total_hours,
			late_minutes, early_minutes, is_holiday_work, is_manual_override, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (date) DO UPDATE SET
			status = EXCLUDED.status,
			applied_shift_id = EXCLUDED.applied_shift_id,
			check_in_at = EXCLUDED.check_in_at,
			check_out_at = EXCLUDED.check_out_at,
			standard_hours = EXCLUDED.standard_hours,
			ot_hours = EXCLUDED.ot_hours,
			sunday_hours = EXCLUDED.sunday_hours,
			night_hours = EXCLUDED.night_hours,
			total_hours = EXCLUDED.total_hours,
			late_minutes = EXCLUDED.late_minutes,
			early_minutes = EXCLUDED.early_minutes,
			is_holiday_work = EXCLUDED.is_holiday_work,
			is_manual_override = EXCLUDED.is_manual_override,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		status.Date,
		string(status.Status),
		status.AppliedShiftID,
		status.CheckInAt,
		status.CheckOutAt,
		status.StandardHours,
		status.OTHours,
		status.SundayHours,
		status.NightHours,
		status.TotalHours,
		status.LateMinutes,
		status.EarlyMinutes,
		status.IsHolidayWork,
		status.IsManualOverride,
		status.Notes,
	).Scan(&status.CreatedAt, &status.UpdatedAt)

	if err != nil {
		return attendance.DayStatus{}, fmt.Errorf("failed to upsert status: %w", err)
	}

	return status, nil
}

// GetByDate implements attendance.StatusRepository.
func (r *dayStatusRepository) GetByDate(ctx context.Context, date string) (attendance.DayStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayStatusColumns + ` FROM day_statuses WHERE date = $1`

	status, err := scanDayStatus(q.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayStatus{}, attendance.ErrStatusNotFound
		}
		return attendance.DayStatus{}, fmt.Errorf("failed to get status: %w", err)
	}

	return status, nil
}

// ListByMonth implements attendance.StatusRepository.
func (r *dayStatusRepository) ListByMonth(ctx context.Context, month string) ([]attendance.DayStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayStatusColumns + ` FROM day_statuses WHERE date LIKE $1 || '-%' ORDER BY date`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	defer rows.Close()

	var statuses []attendance.DayStatus
	for rows.Next() {
		status, err := scanDayStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status: %w", err)
		}
		statuses = append(statuses, status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate statuses: %w", err)
	}

	return statuses, nil
}

// DeleteByDate implements attendance.StatusRepository.
func (r *dayStatusRepository) DeleteByDate(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM day_statuses WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrStatusNotFound
	}

	return nil
}

func scanDayStatus(row pgx.Row) (attendance.DayStatus, error) {
	var status attendance.DayStatus
	var statusValue string
	err := row.Scan(
		&status.Date,
		&statusValue,
		&status.AppliedShiftID,
		&status.CheckInAt,
		&status.CheckOutAt,
		&status.StandardHours,
		&status.OTHours,
		&status.SundayHours,
		&status.NightHours,
		&status.TotalHours,
		&status.LateMinutes,
		&status.EarlyMinutes,
		&status.IsHolidayWork,
		&status.IsManualOverride,
		&status.Notes,
		&status.CreatedAt,
		&status.UpdatedAt,
	)
	if err != nil {
		return attendance.DayStatus{}, err
	}
	status.Status = attendance.Status(statusValue)
	return status, nil
}
