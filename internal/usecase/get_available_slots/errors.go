package get_available_slots

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден на core-бэкенде
	ErrHallNotFound = errors.New("get_available_slots: hall not found")

	// ErrBookingsUnavailable возвращается, когда снимок занятых интервалов
	// получить не удалось. Трактовать сбой как "броней нет" нельзя:
	// сервис предложил бы заведомо конфликтные слоты. Оператору отдается
	// ошибка и пустая сетка.
	ErrBookingsUnavailable = errors.New("get_available_slots: failed to fetch hall bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
