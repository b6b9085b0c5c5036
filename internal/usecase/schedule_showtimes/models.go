package schedule_showtimes

import (
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// Request пакет выбранных слотов для постановки фильма в расписание
type Request struct {
	MovieID     int64                 // ID фильма
	HallID      int64                 // ID зала
	PriceAmount float64               // цена билета для всех сеансов пакета
	Dates       []time.Time           // выбранные оператором даты
	Selections  []domain.SelectionKey // выбранные слоты в порядке выбора
}

// Response результат полностью успешного пакета.
// После него вызывающая сторона сбрасывает все состояние выбора.
type Response struct {
	MovieID int64
	HallID  int64
	Created []CreatedShowtime
}

// CreatedShowtime созданный сеанс в составе пакета
type CreatedShowtime struct {
	Date       string // YYYY-MM-DD
	Slot       string // "HH:00 - HH:00"
	ShowtimeID int64
	Interval   domain.TimeInterval
}

// plannedSlot прошедший валидацию слот, готовый к отправке
type plannedSlot struct {
	key       domain.SelectionKey
	candidate domain.CandidateSlot
}
