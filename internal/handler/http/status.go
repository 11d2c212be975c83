package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/attendance"
	"github.com/chamcong-app/chamcong-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StatusHandler interface {
	ListByMonth(w http.ResponseWriter, r *http.Request)
	SetManual(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	UpdateTimes(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StatusHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewStatusHandler(attendanceService attendance.AttendanceService) StatusHandler {
	return &StatusHandlerImpl{attendanceService: attendanceService}
}

// ListByMonth implements StatusHandler.
func (h *StatusHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	statuses, err := h.attendanceService.StatusesForMonth(r.Context(), month)
	if err != nil {
		slog.Error("ListStatuses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, statuses)
}

// SetManual implements StatusHandler.
func (h *StatusHandlerImpl) SetManual(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetManualStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")

	status, err := h.attendanceService.SetManualStatus(r.Context(), req)
	if err != nil {
		slog.Error("SetManualStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// Recalculate implements StatusHandler.
func (h *StatusHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.RecalculateFromLogs(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		slog.Error("Recalculate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// UpdateTimes implements StatusHandler.
func (h *StatusHandlerImpl) UpdateTimes(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceTimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTimes decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")

	status, err := h.attendanceService.UpdateAttendanceTime(r.Context(), req)
	if err != nil {
		slog.Error("UpdateTimes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// Delete implements StatusHandler.
func (h *StatusHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteStatus(r.Context(), chi.URLParam(r, "date")); err != nil {
		slog.Error("DeleteStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status deleted", nil)
}
