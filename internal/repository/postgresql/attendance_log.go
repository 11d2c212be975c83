package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
)

type attendanceLogRepository struct {
	db *database.DB
}

func NewAttendanceLogRepository(db *database.DB) attendance.LogRepository {
	return &attendanceLogRepository{db: db}
}

// Add implements attendance.LogRepository.
func (r *attendanceLogRepository) Add(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (id, date, type, at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, log.ID, log.Date, string(log.Type), log.At).Scan(&log.CreatedAt)
	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to add log: %w", err)
	}

	return log, nil
}

// ListByDate implements attendance.LogRepository.
func (r *attendanceLogRepository) ListByDate(ctx context.Context, date string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, type, at, created_at
		FROM attendance_logs
		WHERE date = $1
		ORDER BY at
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var l attendance.Log
		var logType string
		if err := rows.Scan(&l.ID, &l.Date, &logType, &l.At, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		l.Type = attendance.LogType(logType)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}

	return logs, nil
}

// DeleteByDate implements attendance.LogRepository.
func (r *attendanceLogRepository) DeleteByDate(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_logs WHERE date = $1`, date); err != nil {
		return fmt.Errorf("failed to delete logs: %w", err)
	}
	return nil
}

// ListDatesWithLogs implements attendance.LogRepository.
func (r *attendanceLogRepository) ListDatesWithLogs(ctx context.Context, from, to string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT date
		FROM attendance_logs
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dates: %w", err)
	}

	return dates, nil
}
