package get_ticket_stats

import (
	"context"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

type ReportsService interface {
	TicketStats(ctx context.Context, q *popcoreClient.TicketStatsQuery) (*popcoreClient.TicketStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
