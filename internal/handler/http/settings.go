package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domainsettings "github.com/chamcong-app/chamcong-backend-go/internal/domain/settings"
	"github.com/chamcong-app/chamcong-backend-go/internal/handler/http/response"
	"github.com/chamcong-app/chamcong-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

// Update implements SettingsHandler.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req domainsettings.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}
