package get_available_slots

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// freeSlotsForDate возвращает слоты сетки на дату, не пересекающиеся
// ни с одним занятым интервалом зала.
//
// Пересечение проверяется по строгому правилу для полуоткрытых интервалов:
// [a,b) и [c,d) пересекаются только при a < d И c < b. Слот, граничащий
// с бронью по одной точке, остается свободным.
//
// Пример: бронь 14:00-16:30 при сетке 10-22/2ч исключает только слот
// "14:00 - 16:00"; слот "12:00 - 14:00" сохраняется, так как кончается
// ровно в начале брони.
//
// Функция детерминирована и зависит только от аргументов.
func freeSlotsForDate(grid domain.SlotGrid, date time.Time, bookings []domain.HallBooking) []domain.CandidateSlot {
	free := make([]domain.CandidateSlot, 0)

	for _, slot := range grid.SlotsForDate(date) {
		if overlapsAny(slot.Interval, bookings) {
			continue
		}
		free = append(free, slot)
	}

	return free
}

func overlapsAny(interval domain.TimeInterval, bookings []domain.HallBooking) bool {
	for _, b := range bookings {
		if interval.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}

// normalizeDates нормализует даты до полуночи и убирает дубликаты,
// сохраняя порядок первого появления
func normalizeDates(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		day := domain.NormalizeDate(d)
		key := day.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, day)
	}

	return out
}

// dateRange возвращает минимальную и максимальную даты списка
func dateRange(dates []time.Time) (from, to time.Time) {
	from, to = dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to
}
