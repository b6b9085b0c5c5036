package reports

import (
	"context"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// PopcoreClient интерфейс клиента core-бэкенда для отчетов
type PopcoreClient interface {
	GetTheaterReports(ctx context.Context, theaterID int64, startDate, endDate *time.Time) ([]popcore.DailyReport, error)
	GetTicketStats(ctx context.Context, q *popcore.TicketStatsQuery) (*popcore.TicketStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
