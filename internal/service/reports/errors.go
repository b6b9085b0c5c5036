package reports

import "errors"

var (
	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("reports.service: theater not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reports.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports.service: internal error")
)
