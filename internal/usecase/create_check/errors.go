package create_check

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrClientNotFound возвращается, когда клиент студии не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrSlotBlocked возвращается, когда слот уже занят чеком этого тренера
	ErrSlotBlocked = errors.New("slot is already blocked")

	// ErrOutsideOperatingHours возвращается, когда интервал выходит за
	// часы работы комнаты
	ErrOutsideOperatingHours = errors.New("interval is outside room operating hours")

	// ErrInvalidInterval возвращается при некорректном интервале чека
	ErrInvalidInterval = errors.New("invalid check interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
