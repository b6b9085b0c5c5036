package get_ticket_stats

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
	"github.com/wdfin/popcore-admin-service/pkg/ptr"
)

// TicketDataPointResponse точка графика продаж
type TicketDataPointResponse struct {
	Day         string  `json:"day"`
	TicketsSold int     `json:"ticketsSold"`
	Revenue     float64 `json:"revenue"`
}

// TicketStatsResponse HTTP response model
type TicketStatsResponse struct {
	TotalTickets int                       `json:"totalTickets"`
	TotalRevenue float64                   `json:"totalRevenue"`
	DataPoints   []TicketDataPointResponse `json:"dataPoints"`
}

// queryFromValues собирает запрос статистики из query-параметров
func queryFromValues(values url.Values) (*popcoreClient.TicketStatsQuery, error) {
	theaterID, err := strconv.ParseInt(values.Get("theaterId"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid theaterId: %w", err)
	}
	hallID, err := strconv.ParseInt(values.Get("hallId"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hallId: %w", err)
	}

	q := &popcoreClient.TicketStatsQuery{
		TheaterID: theaterID,
		HallID:    hallID,
		Filter:    values.Get("filter"),
	}

	if raw := values.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		q.StartDate = ptr.Ptr(date)
	}
	if raw := values.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		q.EndDate = ptr.Ptr(date)
	}

	return q, nil
}

// FromClientStats конвертирует статистику core-бэкенда в HTTP response
func FromClientStats(stats *popcoreClient.TicketStats) *TicketStatsResponse {
	points := make([]TicketDataPointResponse, len(stats.DataPoints))
	for i, p := range stats.DataPoints {
		points[i] = TicketDataPointResponse{
			Day:         p.Day,
			TicketsSold: p.TicketsSold,
			Revenue:     p.Revenue,
		}
	}
	return &TicketStatsResponse{
		TotalTickets: stats.TotalTickets,
		TotalRevenue: stats.TotalRevenue,
		DataPoints:   points,
	}
}
