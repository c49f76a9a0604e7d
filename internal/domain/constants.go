package domain

import "time"

// Default scheduling values
const (
	DefaultStepMinutes = 30 // длительность одного слота
	DefaultWeekDays    = 7
)

// DefaultWeekStartDay канонический первый день недели для расписания
const DefaultWeekStartDay = time.Sunday

// Business validation constants
const (
	MinStepMinutes = 5
	MaxStepMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// TimeKeyFormat формат ключей слотов и weekKey (ISO-8601, секунды и
	// миллисекунды обнулены при нормализации)
	TimeKeyFormat = time.RFC3339
)
