package create_check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	roomRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/room"
	"github.com/stevenluongo/bna-wellness/internal/integrations/memberservice"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
	"github.com/stevenluongo/bna-wellness/pkg/ptr"
)

// UseCase use case для создания чека
type UseCase struct {
	checkRepo    CheckRepository
	roomRepo     RoomRepository
	memberClient MemberServiceClient
	cache        ScheduleCache
	txManager    TransactionManager
	logger       Logger

	stepMinutes  int
	weekStartDay time.Weekday
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil, если кеширование расписаний выключено.
func NewUseCase(
	checkRepo CheckRepository,
	roomRepo RoomRepository,
	memberClient MemberServiceClient,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	stepMinutes int,
	weekStartDay time.Weekday,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultStepMinutes
	}

	return &UseCase{
		checkRepo:    checkRepo,
		roomRepo:     roomRepo,
		memberClient: memberClient,
		cache:        scheduleCache,
		txManager:    txManager,
		logger:       logger,
		stepMinutes:  stepMinutes,
		weekStartDay: weekStartDay,
	}
}

// Execute выполняет use case создания чека
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheck: trainer=%s, client=%s, room=%s, start=%s",
		req.TrainerID, req.ClientID, req.RoomID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheck: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateCheck: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateCheck: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем часы работы и выравнивание по границе слота
	if err := validateOperatingHours(room, req); err != nil {
		uc.logger.Warn("CreateCheck: interval outside operating hours: room=%s, start=%s",
			req.RoomID, req.StartTime.Format(time.RFC3339))
		return nil, err
	}
	if err := validateSlotAlignment(room, req, uc.stepMinutes); err != nil {
		uc.logger.Warn("CreateCheck: start not on slot boundary: %v", err)
		return nil, err
	}

	// 4. Резолвим имена тренера и клиента для отображения в сетке.
	// Недоступность сервиса участников не блокирует создание чека -
	// graceful degradation до чека без имён.
	trainerName, clientName, err := uc.resolveNames(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Определяем неделю по началу интервала
	week := schedule.ComputeWeek(req.StartTime, uc.weekStartDay)

	newCheck := &domain.Check{
		RoomID:      req.RoomID,
		TrainerID:   req.TrainerID,
		ClientID:    req.ClientID,
		TerminalID:  req.TerminalID,
		WeekStart:   week.Start(),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TrainerName: trainerName,
		ClientName:  clientName,
	}

	// 6. Проверка занятости и вставка в одной SERIALIZABLE транзакции:
	// выборка недели блокирует конкурентные вставки той же недели
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		weekChecks, err := uc.checkRepo.GetByRoomAndWeek(txCtx, domain.WeekChecksFilter{
			RoomID:    req.RoomID,
			WeekStart: week.Start(),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get week checks: %v", ErrInternal, err)
		}

		// Блокируют только чеки самого тренера: чеки других тренеров
		// невидимы в его сетке и не конфликтуют
		occ := schedule.BuildOccupancy(weekChecks, ptr.Ptr(req.TrainerID), uc.stepMinutes)

		// Проверяются ровно те слоты, которые новый чек сам займёт:
		// неполный хвост ничего не занимает и конфликтовать не может
		start := schedule.Normalize(req.StartTime)
		for i := 0; i < occ.SpanOf(*newCheck); i++ {
			t := start.Add(time.Duration(i*uc.stepMinutes) * time.Minute)
			if occ.IsBlocked(t) {
				return fmt.Errorf("%w: slot %s", ErrSlotBlocked, schedule.TimeKey(t))
			}
		}

		if _, err := uc.checkRepo.Create(txCtx, newCheck); err != nil {
			return fmt.Errorf("%w: failed to create check: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotBlocked) {
			uc.logger.Warn("CreateCheck: slot blocked for trainer=%s, room=%s, start=%s",
				req.TrainerID, req.RoomID, req.StartTime.Format(time.RFC3339))
			return nil, err
		}
		uc.logger.Error("CreateCheck: transaction failed: %v", err)
		return nil, err
	}

	// 7. Инвалидируем кеш расписания после подтверждённой записи
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.RoomID, week.Key); err != nil {
			uc.logger.Warn("CreateCheck: failed to invalidate schedule cache for room=%s, week=%s: %v",
				req.RoomID, week.Key, err)
		}
	}

	uc.logger.Info("CreateCheck: check id=%s created for trainer=%s, room=%s, week=%s",
		newCheck.ID, req.TrainerID, req.RoomID, week.Key)

	return &Response{
		ID:          newCheck.ID,
		RoomID:      newCheck.RoomID,
		TrainerID:   newCheck.TrainerID,
		ClientID:    newCheck.ClientID,
		TerminalID:  newCheck.TerminalID,
		WeekKey:     week.Key,
		StartTime:   newCheck.StartTime,
		EndTime:     newCheck.EndTime,
		TrainerName: newCheck.TrainerName,
		ClientName:  newCheck.ClientName,
		CreatedAt:   newCheck.CreatedAt,
	}, nil
}

// resolveNames получает отображаемые имена тренера и клиента.
// Отсутствие тренера или клиента - бизнес-ошибка; недоступность сервиса
// участников деградирует до nil-имён.
func (uc *UseCase) resolveNames(ctx context.Context, req *Request) (*string, *string, error) {
	var trainerName, clientName *string

	trainer, err := uc.memberClient.GetTrainer(ctx, req.TrainerID)
	switch {
	case err == nil:
		trainerName = ptr.Ptr(trainer.FullName())
	case errors.Is(err, memberservice.ErrTrainerNotFound):
		uc.logger.Warn("CreateCheck: trainer id=%s not found", req.TrainerID)
		return nil, nil, ErrTrainerNotFound
	default:
		uc.logger.Error("CreateCheck: member service unavailable for trainer=%s: %v", req.TrainerID, err)
	}

	client, err := uc.memberClient.GetClient(ctx, req.ClientID)
	switch {
	case err == nil:
		clientName = ptr.Ptr(client.FullName())
	case errors.Is(err, memberservice.ErrClientNotFound):
		uc.logger.Warn("CreateCheck: client id=%s not found", req.ClientID)
		return nil, nil, ErrClientNotFound
	default:
		uc.logger.Error("CreateCheck: member service unavailable for client=%s: %v", req.ClientID, err)
	}

	return trainerName, clientName, nil
}
