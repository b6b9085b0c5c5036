package popcore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// TicketStatsQuery параметры запроса статистики продаж.
// Filter ("today", "week", "month") и явный период взаимоисключающие;
// при заполненных StartDate/EndDate фильтр игнорируется.
type TicketStatsQuery struct {
	TheaterID int64
	HallID    int64
	Filter    string
	StartDate *time.Time
	EndDate   *time.Time
}

// GetTheaterReports получает отчет продаж кинотеатра по дням.
// Границы периода опциональны.
func (c *Client) GetTheaterReports(ctx context.Context, theaterID int64, startDate, endDate *time.Time) ([]DailyReport, error) {
	query := url.Values{}
	if startDate != nil {
		query.Set("start_date", startDate.Format(domain.DateFormat))
	}
	if endDate != nil {
		query.Set("end_date", endDate.Format(domain.DateFormat))
	}

	reqURL := fmt.Sprintf("%s/api/v6/theaters/%d/reports", c.baseURL, theaterID)
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := c.newRequest(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrTheaterNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var envelope listEnvelope[DailyReport]
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// GetTicketStats получает агрегированную статистику продаж по залу
func (c *Client) GetTicketStats(ctx context.Context, q *TicketStatsQuery) (*TicketStats, error) {
	query := url.Values{}
	query.Set("theater_id", fmt.Sprintf("%d", q.TheaterID))
	query.Set("hall_id", fmt.Sprintf("%d", q.HallID))

	if q.StartDate != nil && q.EndDate != nil {
		query.Set("start_date", q.StartDate.Format(domain.DateFormat))
		query.Set("end_date", q.EndDate.Format(domain.DateFormat))
	} else if q.Filter != "" {
		query.Set("filter", q.Filter)
	}

	reqURL := fmt.Sprintf("%s/api/v6/reports/tickets?%s", c.baseURL, query.Encode())

	req, err := c.newRequest(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrTheaterNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var stats TicketStats
	if err := decode(resp, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
