package create_check

import (
	"fmt"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TrainerID == "" {
		return fmt.Errorf("%w: trainerID is required", ErrInvalidInput)
	}
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	if req.TerminalID == "" {
		return fmt.Errorf("%w: terminalID is required", ErrInvalidInput)
	}
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !schedule.Normalize(req.StartTime).Before(schedule.Normalize(req.EndTime)) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInterval)
	}

	return nil
}

// validateOperatingHours проверяет, что интервал чека лежит внутри часов
// работы комнаты. Сравнение идёт по времени суток: конец интервала
// переякоривается на дату начала, как и при подсчёте span.
func validateOperatingHours(room *domain.Room, req *Request) error {
	if !room.HasOperatingHours() {
		return ErrOutsideOperatingHours
	}

	start := schedule.Normalize(req.StartTime)
	end := schedule.SetTimeOfDay(req.StartTime, req.EndTime)

	open := schedule.SetTimeOfDay(req.StartTime, room.OpenTime)
	close := schedule.SetTimeOfDay(req.StartTime, room.CloseTime)

	if start.Before(open) || end.After(close) {
		return fmt.Errorf("%w: room %s operates %s-%s", ErrOutsideOperatingHours,
			room.ID, room.OpenTime.Format(domain.TimeFormat), room.CloseTime.Format(domain.TimeFormat))
	}

	return nil
}

// validateSlotAlignment проверяет, что начало чека лежит на границе слота
// сетки комнаты: occupied-ячейка ставится только на точное совпадение
func validateSlotAlignment(room *domain.Room, req *Request, stepMinutes int) error {
	start := schedule.Normalize(req.StartTime)
	key := schedule.TimeKey(start)

	for _, slot := range schedule.Slots(room.OpenTime, room.CloseTime, start, stepMinutes) {
		if schedule.TimeKey(slot) == key {
			return nil
		}
	}

	return fmt.Errorf("%w: startTime %s is not on a slot boundary", ErrInvalidInterval,
		start.Format(domain.TimeFormat))
}
