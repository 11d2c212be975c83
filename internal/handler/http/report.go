package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/report"
	"github.com/chamcong-app/chamcong-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	result, err := h.reportService.Monthly(r.Context(), report.MonthlyReportRequest{Month: month})
	if err != nil {
		slog.Error("MonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
