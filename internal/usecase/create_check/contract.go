package create_check

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	"github.com/stevenluongo/bna-wellness/internal/integrations/memberservice"
)

// CheckRepository интерфейс репозитория чеков
type CheckRepository interface {
	Create(ctx context.Context, check *domain.Check) (*domain.Check, error)
	// GetByRoomAndWeek внутри транзакции блокирует выбранные строки (FOR UPDATE)
	GetByRoomAndWeek(ctx context.Context, filter domain.WeekChecksFilter) ([]domain.Check, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// MemberServiceClient интерфейс клиента сервиса участников студии
type MemberServiceClient interface {
	GetTrainer(ctx context.Context, trainerID string) (*memberservice.Trainer, error)
	GetClient(ctx context.Context, clientID string) (*memberservice.StudioClient, error)
}

// ScheduleCache интерфейс инвалидации кеша расписаний
type ScheduleCache interface {
	Invalidate(ctx context.Context, roomID, weekKey string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
