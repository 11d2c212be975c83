package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ButtonState(w http.ResponseWriter, r *http.Request)
	Punch(w http.ResponseWriter, r *http.Request)
	ConfirmRapidPress(w http.ResponseWriter, r *http.Request)
	LogsForDate(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ButtonState implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ButtonState(w http.ResponseWriter, r *http.Request) {
	state, err := h.attendanceService.ButtonState(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// Punch implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Punch(r.Context(), req)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// ConfirmRapidPress implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ConfirmRapidPress(w http.ResponseWriter, r *http.Request) {
	var req attendance.ConfirmRapidPressRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ConfirmRapidPress decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status, err := h.attendanceService.ConfirmRapidPress(r.Context(), req)
	if err != nil {
		slog.Error("ConfirmRapidPress service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// LogsForDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) LogsForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	logs, err := h.attendanceService.LogsForDate(r.Context(), date)
	if err != nil {
		slog.Error("LogsForDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
