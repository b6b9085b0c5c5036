package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// Допустимые значения быстрого фильтра периода
var validFilters = map[string]struct{}{
	"today": {},
	"week":  {},
	"month": {},
}

// Service отчеты о продажах билетов. Агрегацию выполняет core-бэкенд,
// здесь только валидация параметров и проксирование.
type Service struct {
	client PopcoreClient
	logger Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(client PopcoreClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// TheaterReports возвращает отчет продаж кинотеатра по дням
func (s *Service) TheaterReports(ctx context.Context, theaterID int64, startDate, endDate *time.Time) ([]popcoreClient.DailyReport, error) {
	s.logger.Info("TheaterReports: theater=%d", theaterID)

	if theaterID <= 0 {
		return nil, fmt.Errorf("%w: theaterID must be positive", ErrInvalidInput)
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}

	rows, err := s.client.GetTheaterReports(ctx, theaterID, startDate, endDate)
	if err != nil {
		if errors.Is(err, popcoreClient.ErrTheaterNotFound) {
			s.logger.Warn("TheaterReports: theater id=%d not found", theaterID)
			return nil, ErrTheaterNotFound
		}
		s.logger.Error("TheaterReports: popcore error for theater=%d: %v", theaterID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return rows, nil
}

// TicketStats возвращает агрегированную статистику продаж по залу
func (s *Service) TicketStats(ctx context.Context, q *popcoreClient.TicketStatsQuery) (*popcoreClient.TicketStats, error) {
	s.logger.Info("TicketStats: theater=%d, hall=%d, filter=%q", q.TheaterID, q.HallID, q.Filter)

	if q.TheaterID <= 0 || q.HallID <= 0 {
		return nil, fmt.Errorf("%w: theater_id and hall_id must be positive", ErrInvalidInput)
	}

	hasRange := q.StartDate != nil && q.EndDate != nil
	if !hasRange {
		if q.Filter == "" {
			return nil, fmt.Errorf("%w: either filter or start_date/end_date is required", ErrInvalidInput)
		}
		if _, ok := validFilters[q.Filter]; !ok {
			return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, q.Filter)
		}
	} else if q.EndDate.Before(*q.StartDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}

	stats, err := s.client.GetTicketStats(ctx, q)
	if err != nil {
		if errors.Is(err, popcoreClient.ErrTheaterNotFound) {
			s.logger.Warn("TicketStats: theater id=%d not found", q.TheaterID)
			return nil, ErrTheaterNotFound
		}
		s.logger.Error("TicketStats: popcore error for theater=%d, hall=%d: %v", q.TheaterID, q.HallID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return stats, nil
}
