package domain

import "time"

// Check represents a scheduled training session occupying one or more
// consecutive half-hour slots in a room, owned by a trainer
type Check struct {
	ID         string
	RoomID     string
	TrainerID  string
	ClientID   string
	TerminalID string
	WeekStart  time.Time
	StartTime  time.Time
	EndTime    time.Time

	// Denormalized trainer/client names for rendering the grid cell
	TrainerName *string
	ClientName  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the raw interval length in minutes.
// Slot math uses schedule.SpanOf instead, which re-anchors the end
// time-of-day onto the start date first.
func (c *Check) DurationMinutes() int {
	return int(c.EndTime.Sub(c.StartTime).Minutes())
}

// IsOwnedBy returns true if the check belongs to the given trainer
func (c *Check) IsOwnedBy(trainerID string) bool {
	return c.TrainerID == trainerID
}

// WeekChecksFilter фильтр для выборки чеков комнаты за неделю
type WeekChecksFilter struct {
	RoomID    string     // Обязательный параметр
	WeekStart time.Time  // Начало недели (weekKey, распарсенный)
	TrainerID *string    // Фильтр по тренеру (опционально, если nil - все тренеры)
}
