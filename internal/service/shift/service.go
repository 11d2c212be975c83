package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	settingsRepo settings.SettingsRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, settingsRepo settings.SettingsRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepo,
		settingsRepo:    settingsRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh := shift.Shift{
		ID:            uuid.NewString(),
		Name:          req.Name,
		StartTime:     req.StartTime,
		OfficeEndTime: req.OfficeEndTime,
		EndTime:       req.EndTime,
		DepartureTime: req.DepartureTime,
		BreakMinutes:  req.BreakMinutes,
		WorkDays:      req.WorkDays,
	}

	// The cached display hint is derived at write time; the engine
	// recomputes from the raw clock strings on every use.
	overnight, err := sh.IsOvernight()
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	sh.IsNightShift = overnight

	created, err := s.ShiftRepository.Create(ctx, sh)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return s.toResponse(ctx, created)
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return s.toResponse(ctx, sh)
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh, isActive(cfg, sh.ID)))
	}
	return responses, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.OfficeEndTime != nil {
		sh.OfficeEndTime = *req.OfficeEndTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.DepartureTime != nil {
		sh.DepartureTime = *req.DepartureTime
	}
	if req.BreakMinutes != nil {
		sh.BreakMinutes = *req.BreakMinutes
	}
	if len(req.WorkDays) > 0 {
		sh.WorkDays = req.WorkDays
	}

	// The merged result must still order cleanly; partial edits can break
	// an ordering that each field passes in isolation.
	if !shift.ClockOrderingValid(sh.StartTime, sh.OfficeEndTime, sh.EndTime) {
		return shift.ShiftResponse{}, shift.ErrInvalidClockTime
	}

	overnight, err := sh.IsOvernight()
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	sh.IsNightShift = overnight
	sh.UpdatedAt = time.Now()

	if err := s.ShiftRepository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return s.toResponse(ctx, sh)
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if isActive(cfg, id) {
		cfg.ActiveShiftID = nil
		cfg.UpdatedAt = time.Now()
		if err := s.settingsRepo.Update(ctx, cfg); err != nil {
			return fmt.Errorf("failed to clear active shift: %w", err)
		}
	}

	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// Activate implements shift.ShiftService.
func (s *ShiftServiceImpl) Activate(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cfg.ActiveShiftID = &id
	cfg.UpdatedAt = time.Now()

	if err := s.settingsRepo.Update(ctx, cfg); err != nil {
		return fmt.Errorf("failed to set active shift: %w", err)
	}
	return nil
}

func (s *ShiftServiceImpl) toResponse(ctx context.Context, sh shift.Shift) (shift.ShiftResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return mapShiftToResponse(sh, isActive(cfg, sh.ID)), nil
}

func isActive(cfg settings.UserSettings, shiftID string) bool {
	return cfg.ActiveShiftID != nil && *cfg.ActiveShiftID == shiftID
}

func mapShiftToResponse(sh shift.Shift, active bool) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:            sh.ID,
		Name:          sh.Name,
		StartTime:     sh.StartTime,
		OfficeEndTime: sh.OfficeEndTime,
		EndTime:       sh.EndTime,
		DepartureTime: sh.DepartureTime,
		BreakMinutes:  sh.BreakMinutes,
		IsNightShift:  sh.IsNightShift,
		WorkDays:      sh.WorkDays,
		DaysApplied:   sh.WorkDayMnemonics(),
		IsActive:      active,
		CreatedAt:     sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     sh.UpdatedAt.Format(time.RFC3339),
	}
}
