package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
)

// SettingsService defines business logic for the single-user settings row.
type SettingsService interface {
	Get(ctx context.Context) (settings.SettingsResponse, error)
	Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error)
}

type SettingsServiceImpl struct {
	settings.SettingsRepository
	shiftRepo shift.ShiftRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository, shiftRepo shift.ShiftRepository) SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepo,
		shiftRepo:          shiftRepo,
	}
}

// Get implements SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return mapSettingsToResponse(cfg), nil
}

// Update implements SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}

	if req.LateThresholdMinutes != nil {
		cfg.LateThresholdMinutes = *req.LateThresholdMinutes
	}
	if req.RapidPressThresholdSecond != nil {
		cfg.RapidPressThresholdSecond = *req.RapidPressThresholdSecond
	}
	if req.MultiButtonMode != nil {
		cfg.MultiButtonMode = settings.ButtonMode(*req.MultiButtonMode)
	}
	if req.ActiveShiftID != nil {
		if *req.ActiveShiftID == "" {
			cfg.ActiveShiftID = nil
		} else {
			// The pointer must reference a real shift.
			if _, err := s.shiftRepo.GetByID(ctx, *req.ActiveShiftID); err != nil {
				if errors.Is(err, shift.ErrShiftNotFound) {
					return settings.SettingsResponse{}, shift.ErrShiftNotFound
				}
				return settings.SettingsResponse{}, fmt.Errorf("failed to get shift: %w", err)
			}
			cfg.ActiveShiftID = req.ActiveShiftID
		}
	}
	cfg.UpdatedAt = time.Now()

	if err := s.SettingsRepository.Update(ctx, cfg); err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return mapSettingsToResponse(cfg), nil
}

func mapSettingsToResponse(cfg settings.UserSettings) settings.SettingsResponse {
	return settings.SettingsResponse{
		LateThresholdMinutes:      cfg.LateThresholdMinutes,
		RapidPressThresholdSecond: cfg.RapidPressThresholdSecond,
		MultiButtonMode:           string(cfg.MultiButtonMode),
		ActiveShiftID:             cfg.ActiveShiftID,
		UpdatedAt:                 cfg.UpdatedAt.Format(time.RFC3339),
	}
}
