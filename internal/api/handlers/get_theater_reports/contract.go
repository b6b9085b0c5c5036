package get_theater_reports

import (
	"context"
	"time"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type ReportsService interface {
	TheaterReports(ctx context.Context, theaterID int64, startDate, endDate *time.Time) ([]popcoreClient.DailyReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
