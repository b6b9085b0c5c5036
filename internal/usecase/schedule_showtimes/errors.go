package schedule_showtimes

import (
	"errors"
	"fmt"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

var (
	// ErrInvalidInput возвращается при нарушении предусловий пакета:
	// не выбран фильм или зал, пустой список дат или выбранных слотов.
	// Ни один сетевой вызов при этом не выполняется.
	ErrInvalidInput = errors.New("schedule_showtimes: invalid input data")

	// ErrInvalidDuration возвращается, когда длительность слота вне (0, max].
	// Отклоняется весь пакет, включая корректные слоты: частично
	// отправленное расписание хуже повторной отправки.
	ErrInvalidDuration = errors.New("schedule_showtimes: invalid slot duration")

	// ErrStaleSelection возвращается, когда выбранный слот не лежит на
	// текущей сетке: метка устарела после смены параметров и не должна
	// дойти до бэкенда.
	ErrStaleSelection = errors.New("schedule_showtimes: selection is not a valid grid slot")

	// ErrMovieNotFound возвращается, когда фильм не найден на core-бэкенде
	ErrMovieNotFound = errors.New("schedule_showtimes: movie not found")

	// ErrBatchInFlight возвращается при попытке запустить второй пакет,
	// пока не завершилась последовательная отправка первого
	ErrBatchInFlight = errors.New("schedule_showtimes: another batch is in flight")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_showtimes: internal error")
)

// ConflictError возвращается, когда core-бэкенд отклонил слот с 409:
// между снимком занятых интервалов и отправкой другой оператор успел
// занять зал. Обработка пакета останавливается на этом слоте; Created
// перечисляет сеансы, успевшие создаться до остановки.
type ConflictError struct {
	Date        string
	Slot        string
	Attempted   domain.TimeInterval
	Conflicting domain.TimeInterval
	Created     []CreatedShowtime
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule_showtimes: slot %q on %s conflicts with existing booking %s",
		e.Slot, e.Date, e.Conflicting)
}

// SubmitError возвращается при прочих сбоях отправки слота (сеть,
// неожиданный статус). Пакет останавливается; Created перечисляет
// сеансы, созданные до сбоя.
type SubmitError struct {
	Date    string
	Slot    string
	Created []CreatedShowtime
	Err     error
}

// Error реализует интерфейс error
func (e *SubmitError) Error() string {
	return fmt.Sprintf("schedule_showtimes: failed to submit slot %q on %s: %v", e.Slot, e.Date, e.Err)
}

// Unwrap отдает исходную ошибку отправки
func (e *SubmitError) Unwrap() error {
	return e.Err
}
