package popcore

import (
	"errors"
	"fmt"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

var (
	// ErrMovieNotFound возвращается, когда фильм не найден на core-бэкенде
	ErrMovieNotFound = errors.New("popcore client: movie not found")

	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("popcore client: theater not found")

	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("popcore client: hall not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	// (сетевые сбои, невозможность построить запрос)
	ErrInternal = errors.New("popcore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе core-бэкенда
	ErrInvalidResponse = errors.New("popcore client: invalid response")
)

// ConflictError возвращается core-бэкендом (HTTP 409) при попытке создать
// сеанс, пересекающийся с уже существующим. Несет интервал конфликтующего
// сеанса: клиентский фильтр слотов работает по снимку и может отстать от
// параллельных бронирований других операторов.
type ConflictError struct {
	Conflicting domain.TimeInterval
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("popcore client: showtime conflicts with existing booking %s", e.Conflicting)
}
