package create_check

import "time"

// Request модель запроса на создание чека
type Request struct {
	TrainerID  string    // Тренер-владелец (из заголовка аутентификации)
	ClientID   string    // Клиент студии
	TerminalID string    // Активная терминальная сессия
	RoomID     string    // Комната
	StartTime  time.Time // Начало интервала (граница слота)
	EndTime    time.Time // Конец интервала
}

// Response созданный чек
type Response struct {
	ID          string
	RoomID      string
	TrainerID   string
	ClientID    string
	TerminalID  string
	WeekKey     string
	StartTime   time.Time
	EndTime     time.Time
	TrainerName *string
	ClientName  *string
	CreatedAt   time.Time
}
