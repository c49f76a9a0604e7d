package get_week_schedule

import (
	"context"
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// CheckRepository интерфейс репозитория чеков
type CheckRepository interface {
	// GetByRoomAndWeek получает все чеки комнаты за неделю
	GetByRoomAndWeek(ctx context.Context, filter domain.WeekChecksFilter) ([]domain.Check, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// ScheduleCache интерфейс кеша готовых расписаний
type ScheduleCache interface {
	Get(ctx context.Context, roomID, weekKey, viewerID string, dest interface{}) error
	Set(ctx context.Context, roomID, weekKey, viewerID string, value interface{}) error
}

// CacheMetrics счётчики попаданий в кеш расписаний
type CacheMetrics interface {
	CacheHit()
	CacheMiss()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
