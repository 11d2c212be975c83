package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// The settings table holds a single row pinned to id 1.
const settingsRowID = 1

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT late_threshold_minutes, rapid_press_threshold_seconds,
			   multi_button_mode, active_shift_id, updated_at
		FROM user_settings
		WHERE id = $1
	`

	var cfg settings.UserSettings
	var mode string
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&cfg.LateThresholdMinutes,
		&cfg.RapidPressThresholdSecond,
		&mode,
		&cfg.ActiveShiftID,
		&cfg.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.UserSettings{
				LateThresholdMinutes:      settings.DefaultLateThresholdMinutes,
				RapidPressThresholdSecond: settings.DefaultRapidPressThresholdSecond,
				MultiButtonMode:           settings.ButtonModeFull,
			}, nil
		}
		return settings.UserSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	cfg.MultiButtonMode = settings.ButtonMode(mode)
	return cfg, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepository) Update(ctx context.Context, cfg settings.UserSettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_settings (
			id, late_threshold_minutes, rapid_press_threshold_seconds,
			multi_button_mode, active_shift_id
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			late_threshold_minutes = EXCLUDED.late_threshold_minutes,
			rapid_press_threshold_seconds = EXCLUDED.rapid_press_threshold_seconds,
			multi_button_mode = EXCLUDED.multi_button_mode,
			active_shift_id = EXCLUDED.active_shift_id,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		settingsRowID,
		cfg.LateThresholdMinutes,
		cfg.RapidPressThresholdSecond,
		string(cfg.MultiButtonMode),
		cfg.ActiveShiftID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}
