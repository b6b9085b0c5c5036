package get_available_slots

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// Request модель запроса на расчет свободных слотов
type Request struct {
	HallID int64       // ID зала
	Dates  []time.Time // Целевые календарные даты в порядке выбора оператором
}

// Response свободные слоты по датам.
// Dates сохраняет порядок запроса; SlotsByDate ключуется датой YYYY-MM-DD.
// Для дат без единого свободного слота присутствует пустой список -
// отсутствие даты в ответе и "нет слотов" для клиента различимы.
type Response struct {
	HallID      int64
	Dates       []string
	SlotsByDate map[string][]Slot
}

// Slot свободный кандидатный слот
type Slot struct {
	Label     string    // "HH:00 - HH:00"
	StartTime time.Time // начало интервала
	EndTime   time.Time // конец интервала (не включается)
}

func fromCandidate(c domain.CandidateSlot) Slot {
	return Slot{
		Label:     c.Label,
		StartTime: c.Interval.Start,
		EndTime:   c.Interval.End,
	}
}
