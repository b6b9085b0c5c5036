package admins

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admins.service: invalid input data")

	// ErrUsernameTaken возвращается при попытке создать дубликат username
	ErrUsernameTaken = errors.New("admins.service: username already taken")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
	// Не различаем "нет такого пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("admins.service: invalid credentials")

	// ErrAccessDenied возвращается, когда роль не позволяет операцию
	ErrAccessDenied = errors.New("admins.service: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admins.service: internal error")
)
