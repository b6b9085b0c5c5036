package catalog

import "errors"

var (
	// ErrMovieNotFound возвращается, когда фильм не найден
	ErrMovieNotFound = errors.New("catalog.service: movie not found")

	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("catalog.service: theater not found")

	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("catalog.service: hall not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
