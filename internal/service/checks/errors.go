package checks

import "errors"

var (
	// ErrCheckNotFound возвращается, когда чек не найден
	ErrCheckNotFound = errors.New("check not found")

	// ErrAccessDenied возвращается, когда тренер пытается удалить чужой чек
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
