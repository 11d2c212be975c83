package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/holiday"
	"github.com/chamcong-app/chamcong-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayRepo holiday.HolidayRepository
}

// NewHolidayHandler wires the repository directly: the holiday list has no
// business rules beyond validation.
func NewHolidayHandler(holidayRepo holiday.HolidayRepository) HolidayHandler {
	return &HolidayHandlerImpl{holidayRepo: holidayRepo}
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayRepo.List(r.Context())
	if err != nil {
		slog.Error("ListHolidays error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hd := range holidays {
		responses = append(responses, holiday.HolidayResponse{Date: hd.Date, Name: hd.Name})
	}
	response.Success(w, responses)
}

// Add implements HolidayHandler.
func (h *HolidayHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req holiday.AddHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.holidayRepo.Add(r.Context(), holiday.PublicHoliday{Date: req.Date, Name: req.Name}); err != nil {
		slog.Error("AddHoliday error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", holiday.HolidayResponse{Date: req.Date, Name: req.Name})
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayRepo.DeleteByDate(r.Context(), chi.URLParam(r, "date")); err != nil {
		slog.Error("DeleteHoliday error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
