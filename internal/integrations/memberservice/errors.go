package memberservice

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("memberservice: trainer not found")

	// ErrClientNotFound возвращается, когда клиент студии не найден
	ErrClientNotFound = errors.New("memberservice: client not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("memberservice: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("memberservice: internal error")
)
