package schedule_showtimes

import (
	"fmt"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// validateRequest проверяет предусловия пакета.
// Любое нарушение отклоняет пакет целиком до единого сетевого вызова.
func validateRequest(req *Request) error {
	if req.MovieID <= 0 {
		return fmt.Errorf("%w: movie must be selected", ErrInvalidInput)
	}

	if req.HallID <= 0 {
		return fmt.Errorf("%w: hall must be selected", ErrInvalidInput)
	}

	if req.PriceAmount < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date must be selected", ErrInvalidInput)
	}

	if len(req.Selections) == 0 {
		return fmt.Errorf("%w: at least one time slot must be selected", ErrInvalidInput)
	}

	return nil
}

// planSlots конвертирует выбранные ключи в упорядоченный план отправки.
//
// Порядок: группировка по дате в порядке первого появления даты, внутри
// даты - порядок выбора. Семантической нагрузки порядок не несет, но
// обязан быть детерминированным.
//
// Для каждого слота до любого сетевого вызова проверяется:
// - дата ключа входит в выбранные даты;
// - длительность строго больше нуля и не больше maxDurationHours -
//   нарушение отклоняет ВЕСЬ пакет с указанием слота и его длительности;
// - метка лежит на текущей сетке (устаревший ключ не отправляется).
func planSlots(req *Request, grid domain.SlotGrid, maxDurationHours int) ([]plannedSlot, error) {
	pickedDates := make(map[string]time.Time, len(req.Dates))
	for _, d := range req.Dates {
		day := domain.NormalizeDate(d)
		pickedDates[day.Format(domain.DateFormat)] = day
	}

	selection := domain.NewSelectionSet()
	for _, key := range req.Selections {
		if selection.IsSelected(key) {
			return nil, fmt.Errorf("%w: duplicate selection %s %q", ErrInvalidInput, key.Date, key.Slot)
		}
		selection.Toggle(key)
	}

	dates, grouped := selection.GroupByDate()

	planned := make([]plannedSlot, 0, selection.Len())
	for _, date := range dates {
		day, ok := pickedDates[date]
		if !ok {
			return nil, fmt.Errorf("%w: selection date %s is not among the picked dates", ErrInvalidInput, date)
		}

		for _, slot := range grouped[date] {
			startHour, endHour, err := domain.ParseSlotLabel(slot)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrStaleSelection, err)
			}

			duration := endHour - startHour
			if duration <= 0 || duration > maxDurationHours {
				return nil, fmt.Errorf("%w: slot %q on %s spans %d hours, allowed range is (0, %d]",
					ErrInvalidDuration, slot, date, duration, maxDurationHours)
			}

			candidate, err := grid.SlotByLabel(day, slot)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrStaleSelection, err)
			}

			planned = append(planned, plannedSlot{
				key:       domain.SelectionKey{Date: date, Slot: slot},
				candidate: candidate,
			})
		}
	}

	return planned, nil
}
