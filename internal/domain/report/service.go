package report

import "context"

// ReportService aggregates day statuses into reporting views.
type ReportService interface {
	// Monthly sums recorded hour buckets and projects the remainder of the
	// month from the active shift
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)
}
