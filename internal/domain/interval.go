package domain

import (
	"fmt"
	"time"
)

// TimeInterval полуоткрытый интервал времени [Start, End).
// Инвариант: Start строго раньше End.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// Validate проверяет инвариант Start < End
func (i TimeInterval) Validate() error {
	if !i.Start.Before(i.End) {
		return fmt.Errorf("invalid interval: start %s is not before end %s",
			i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}

// Overlaps проверяет реальное пересечение двух полуоткрытых интервалов.
// Интервалы [a,b) и [c,d) пересекаются только если a < d И c < b.
// Используем строгие неравенства: интервалы, граничащие по одной точке,
// пересечением НЕ считаются.
//
// Примеры:
// - [14:00,16:00) и [14:00,16:30) → пересекаются
// - [12:00,14:00) и [14:00,16:30) → НЕ пересекаются (граничат)
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration возвращает длительность интервала
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// String возвращает интервал в читаемом виде для логов и сообщений об ошибках
func (i TimeInterval) String() string {
	return fmt.Sprintf("%s - %s", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// HallBooking снимок занятого интервала зала на момент расчета слотов.
// Создается и удаляется исключительно core-бэкендом; здесь только читается.
// Снимок может устареть - финальную проверку конфликтов выполняет бэкенд.
type HallBooking struct {
	HallID   int64
	Interval TimeInterval
}
