package schedule_showtimes

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// UseCase use case пакетной постановки фильма в расписание.
//
// Пакет обрабатывается в два прохода: сначала полная локальная валидация
// всех слотов (без сети), затем последовательная отправка по одному слоту.
// Первый же конфликт или сбой останавливает отправку: оставшиеся слоты
// не отправляются, а в ошибке перечисляются уже созданные сеансы, чтобы
// оператор видел, что успело пройти до остановки.
type UseCase struct {
	client           PopcoreClient
	grid             domain.SlotGrid
	maxDurationHours int
	logger           Logger

	// inFlight не допускает второй пакет, пока идет последовательная
	// отправка первого
	inFlight atomic.Bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PopcoreClient, grid domain.SlotGrid, maxDurationHours int, logger Logger) *UseCase {
	return &UseCase{
		client:           client,
		grid:             grid,
		maxDurationHours: maxDurationHours,
		logger:           logger,
	}
}

// Execute выполняет use case пакетной постановки в расписание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		uc.logger.Warn("ScheduleShowtimes: rejected batch for movie=%d, another batch is in flight", req.MovieID)
		return nil, ErrBatchInFlight
	}
	defer uc.inFlight.Store(false)

	uc.logger.Info("ScheduleShowtimes: movie=%d, hall=%d, dates=%d, selections=%d, price=%.2f",
		req.MovieID, req.HallID, len(req.Dates), len(req.Selections), req.PriceAmount)

	// 1. Предусловия пакета
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleShowtimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Локальная валидация каждого слота до любого сетевого вызова.
	// Первый некорректный слот отклоняет весь пакет.
	planned, err := planSlots(req, uc.grid, uc.maxDurationHours)
	if err != nil {
		uc.logger.Warn("ScheduleShowtimes: slot validation failed: %v", err)
		return nil, err
	}

	// 3. Последовательная отправка в порядке плана
	created := make([]CreatedShowtime, 0, len(planned))

	for _, slot := range planned {
		showtime, err := uc.client.CreateShowtime(ctx, req.MovieID, &popcoreClient.CreateShowtimeRequest{
			HallID:      req.HallID,
			StartTime:   slot.candidate.Interval.Start.Format(time.RFC3339),
			EndTime:     slot.candidate.Interval.End.Format(time.RFC3339),
			PriceAmount: req.PriceAmount,
		})

		if err != nil {
			return nil, uc.submitError(req, slot, created, err)
		}

		created = append(created, CreatedShowtime{
			Date:       slot.key.Date,
			Slot:       slot.key.Slot,
			ShowtimeID: showtime.ID,
			Interval:   slot.candidate.Interval,
		})

		uc.logger.Info("ScheduleShowtimes: created showtime id=%d for movie=%d, hall=%d, slot=%s %q",
			showtime.ID, req.MovieID, req.HallID, slot.key.Date, slot.key.Slot)
	}

	uc.logger.Info("ScheduleShowtimes: batch complete, %d showtimes created for movie=%d, hall=%d",
		len(created), req.MovieID, req.HallID)

	// Полный успех: вызывающая сторона сбрасывает выбор дат, слотов,
	// фильма и зала.
	return &Response{
		MovieID: req.MovieID,
		HallID:  req.HallID,
		Created: created,
	}, nil
}

// submitError превращает сбой отправки слота в ошибку пакета.
// Отправка уже остановлена: ни один слот после сбойного не ушел.
func (uc *UseCase) submitError(req *Request, slot plannedSlot, created []CreatedShowtime, err error) error {
	var conflict *popcoreClient.ConflictError
	if errors.As(err, &conflict) {
		uc.logger.Warn("ScheduleShowtimes: conflict on slot %s %q for movie=%d, hall=%d: existing booking %s (%d created before stop)",
			slot.key.Date, slot.key.Slot, req.MovieID, req.HallID, conflict.Conflicting, len(created))
		return &ConflictError{
			Date:        slot.key.Date,
			Slot:        slot.key.Slot,
			Attempted:   slot.candidate.Interval,
			Conflicting: conflict.Conflicting,
			Created:     created,
		}
	}

	if errors.Is(err, popcoreClient.ErrMovieNotFound) {
		uc.logger.Warn("ScheduleShowtimes: movie id=%d not found", req.MovieID)
		return ErrMovieNotFound
	}

	uc.logger.Error("ScheduleShowtimes: failed to submit slot %s %q for movie=%d, hall=%d: %v (%d created before stop)",
		slot.key.Date, slot.key.Slot, req.MovieID, req.HallID, err, len(created))
	return &SubmitError{
		Date:    slot.key.Date,
		Slot:    slot.key.Slot,
		Created: created,
		Err:     err,
	}
}
