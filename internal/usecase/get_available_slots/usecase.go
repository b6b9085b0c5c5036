package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// UseCase use case расчета свободных слотов зала на набор дат
type UseCase struct {
	client PopcoreClient
	grid   domain.SlotGrid
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PopcoreClient, grid domain.SlotGrid, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		grid:   grid,
		logger: logger,
	}
}

// Execute выполняет use case расчета свободных слотов.
// Результат - чистая функция от снимка занятых интервалов и параметров
// сетки: при одинаковом снимке ответ детерминирован.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: hall=%d, dates=%d", req.HallID, len(req.Dates))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Пустой набор дат - пустой ответ. Прежние слоты не сохраняются:
	// при смене зала или дат результат всегда считается заново.
	dates := normalizeDates(req.Dates)
	if len(dates) == 0 {
		return &Response{
			HallID:      req.HallID,
			Dates:       []string{},
			SlotsByDate: map[string][]Slot{},
		}, nil
	}

	// 3. Получаем снимок занятых интервалов зала за весь период
	from, to := dateRange(dates)
	bookings, err := uc.client.GetHallBookings(ctx, req.HallID, from, to)
	if err != nil {
		if errors.Is(err, popcoreClient.ErrHallNotFound) {
			uc.logger.Warn("GetAvailableSlots: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		// Сбой снимка не деградирует в "броней нет" - отдаем ошибку,
		// оператор повторит запрос.
		uc.logger.Error("GetAvailableSlots: failed to fetch bookings for hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingsUnavailable, err)
	}

	// 4. Считаем свободные слоты по каждой дате
	resp := &Response{
		HallID:      req.HallID,
		Dates:       make([]string, 0, len(dates)),
		SlotsByDate: make(map[string][]Slot, len(dates)),
	}

	total := 0
	for _, date := range dates {
		key := date.Format(domain.DateFormat)

		free := freeSlotsForDate(uc.grid, date, bookings)
		slots := make([]Slot, 0, len(free))
		for _, c := range free {
			slots = append(slots, fromCandidate(c))
		}

		resp.Dates = append(resp.Dates, key)
		resp.SlotsByDate[key] = slots
		total += len(slots)
	}

	uc.logger.Info("GetAvailableSlots: hall=%d, %d free slots across %d dates (%d bookings in snapshot)",
		req.HallID, total, len(dates), len(bookings))

	return resp, nil
}
