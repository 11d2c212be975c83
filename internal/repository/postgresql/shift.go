package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, name, start_time, office_end_time, end_time, departure_time,
			break_minutes, is_night_shift, work_days
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sh.ID,
		sh.Name,
		sh.StartTime,
		sh.OfficeEndTime,
		sh.EndTime,
		sh.DepartureTime,
		sh.BreakMinutes,
		sh.IsNightShift,
		sh.WorkDays,
	).Scan(&sh.CreatedAt, &sh.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return sh, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, office_end_time, end_time, departure_time,
			   break_minutes, is_night_shift, work_days, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var sh shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.Name, &sh.StartTime, &sh.OfficeEndTime, &sh.EndTime, &sh.DepartureTime,
		&sh.BreakMinutes, &sh.IsNightShift, &sh.WorkDays, &sh.CreatedAt, &sh.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, office_end_time, end_time, departure_time,
			   break_minutes, is_night_shift, work_days, created_at, updated_at
		FROM shifts
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.Name, &sh.StartTime, &sh.OfficeEndTime, &sh.EndTime, &sh.DepartureTime,
			&sh.BreakMinutes, &sh.IsNightShift, &sh.WorkDays, &sh.CreatedAt, &sh.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, start_time = $3, office_end_time = $4, end_time = $5,
			departure_time = $6, break_minutes = $7, is_night_shift = $8,
			work_days = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		sh.ID,
		sh.Name,
		sh.StartTime,
		sh.OfficeEndTime,
		sh.EndTime,
		sh.DepartureTime,
		sh.BreakMinutes,
		sh.IsNightShift,
		sh.WorkDays,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
