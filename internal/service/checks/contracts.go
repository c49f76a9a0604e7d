package checks

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// CheckRepository интерфейс репозитория чеков
type CheckRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Check, error)
	GetByRoomAndWeek(ctx context.Context, filter domain.WeekChecksFilter) ([]domain.Check, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleCache интерфейс инвалидации кеша расписаний.
// Инвалидация вызывается после подтверждённой записи в БД.
type ScheduleCache interface {
	Invalidate(ctx context.Context, roomID, weekKey string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
