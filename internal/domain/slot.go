package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotGrid фиксированная суточная сетка кандидатных слотов.
// Слоты начинаются в OpenHour и идут с шагом SlotLengthHours,
// пока конец слота не превышает CloseHour.
type SlotGrid struct {
	OpenHour        int
	CloseHour       int
	SlotLengthHours int
}

// DefaultSlotGrid возвращает сетку с дефолтными параметрами (10-22, шаг 2 часа)
func DefaultSlotGrid() SlotGrid {
	return SlotGrid{
		OpenHour:        DefaultOpenHour,
		CloseHour:       DefaultCloseHour,
		SlotLengthHours: DefaultSlotLengthHours,
	}
}

// Validate проверяет параметры сетки.
// Сетка ограничена одними сутками: переход через полночь не поддерживается.
func (g SlotGrid) Validate() error {
	if g.OpenHour < 0 || g.CloseHour > 24 {
		return fmt.Errorf("slot grid: hours must be within a single day, got open=%d close=%d", g.OpenHour, g.CloseHour)
	}
	if g.OpenHour >= g.CloseHour {
		return fmt.Errorf("slot grid: open hour %d must be before close hour %d", g.OpenHour, g.CloseHour)
	}
	if g.SlotLengthHours <= 0 {
		return fmt.Errorf("slot grid: slot length must be positive, got %d", g.SlotLengthHours)
	}
	return nil
}

// CandidateSlot кандидатный слот сетки на конкретную дату.
// Производное, эфемерное значение: пересчитывается при каждой смене зала
// или набора дат и никогда не сохраняется.
type CandidateSlot struct {
	Date     time.Time // календарная дата (полночь локального времени)
	Interval TimeInterval
	Label    string // "HH:00 - HH:00"
}

// SlotsForDate перечисляет все слоты сетки на указанную календарную дату.
// Дата нормализуется до полуночи в своей таймзоне; слоты привязываются
// к этой же таймзоне.
func (g SlotGrid) SlotsForDate(date time.Time) []CandidateSlot {
	day := NormalizeDate(date)

	slots := make([]CandidateSlot, 0)
	for h := g.OpenHour; h+g.SlotLengthHours <= g.CloseHour; h += g.SlotLengthHours {
		start := day.Add(time.Duration(h) * time.Hour)
		end := day.Add(time.Duration(h+g.SlotLengthHours) * time.Hour)

		slots = append(slots, CandidateSlot{
			Date:     day,
			Interval: TimeInterval{Start: start, End: end},
			Label:    SlotLabel(h, h+g.SlotLengthHours),
		})
	}

	return slots
}

// SlotByLabel восстанавливает слот сетки на указанную дату по его метке.
// Метка обязана соответствовать слоту текущей сетки: устаревшие метки
// (после смены параметров сетки) отклоняются.
func (g SlotGrid) SlotByLabel(date time.Time, label string) (CandidateSlot, error) {
	startHour, endHour, err := ParseSlotLabel(label)
	if err != nil {
		return CandidateSlot{}, err
	}

	for _, slot := range g.SlotsForDate(date) {
		if slot.Interval.Start.Hour() == startHour && slot.Interval.End.Hour() == endHour%24 {
			return slot, nil
		}
	}

	return CandidateSlot{}, fmt.Errorf("slot %q is not on the %d-%d/%dh grid", label, g.OpenHour, g.CloseHour, g.SlotLengthHours)
}

// SlotLabel формирует человекочитаемую метку слота вида "10:00 - 12:00"
func SlotLabel(startHour, endHour int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", startHour, endHour)
}

// ParseSlotLabel разбирает метку слота "HH:00 - HH:00" обратно в часы
func ParseSlotLabel(label string) (startHour, endHour int, err error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid slot label %q, want \"HH:00 - HH:00\"", label)
	}

	startHour, err = parseHour(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid slot label %q: %v", label, err)
	}
	endHour, err = parseHour(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid slot label %q: %v", label, err)
	}

	return startHour, endHour, nil
}

func parseHour(s string) (int, error) {
	hm := strings.Split(strings.TrimSpace(s), ":")
	if len(hm) != 2 || hm[1] != "00" {
		return 0, fmt.Errorf("time %q is not aligned to a full hour", s)
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	return h, nil
}

// NormalizeDate обнуляет время, оставляя только календарную дату
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
