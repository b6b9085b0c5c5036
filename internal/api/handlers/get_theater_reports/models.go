package get_theater_reports

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
	"github.com/wdfin/popcore-admin-service/pkg/ptr"
)

// DailyReportResponse HTTP response model
type DailyReportResponse struct {
	Date         string  `json:"date"`
	TotalTickets int     `json:"totalTickets"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// TheaterReportsResponse HTTP response model
type TheaterReportsResponse struct {
	Data []DailyReportResponse `json:"data"`
}

// parseOptionalDate разбирает необязательный query-параметр даты
func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(date), nil
}

// FromClientReports конвертирует отчет core-бэкенда в HTTP response
func FromClientReports(list []popcoreClient.DailyReport) *TheaterReportsResponse {
	out := make([]DailyReportResponse, len(list))
	for i, r := range list {
		out[i] = DailyReportResponse{
			Date:         r.Date,
			TotalTickets: r.TotalTickets,
			TotalRevenue: r.TotalRevenue,
		}
	}
	return &TheaterReportsResponse{Data: out}
}
