package get_week_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	cache "github.com/stevenluongo/bna-wellness/internal/infra/cache/schedule"
	roomRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/room"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
	"github.com/stevenluongo/bna-wellness/pkg/ptr"
)

// UseCase use case получения недельного расписания комнаты
type UseCase struct {
	checkRepo    CheckRepository
	roomRepo     RoomRepository
	cache        ScheduleCache
	cacheMetrics CacheMetrics
	timeProvider TimeProvider
	logger       Logger

	stepMinutes  int
	weekStartDay time.Weekday
}

// NewUseCase создает новый экземпляр use case.
// cache и cacheMetrics могут быть nil, если кеширование выключено.
func NewUseCase(
	checkRepo CheckRepository,
	roomRepo RoomRepository,
	scheduleCache ScheduleCache,
	cacheMetrics CacheMetrics,
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
		cache:        scheduleCache,
		cacheMetrics: cacheMetrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		stepMinutes:  stepMinutes,
		weekStartDay: weekStartDay,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	// Определяем неделю: явный ключ или неделя, содержащая "сегодня"
	var week schedule.Week
	if req.WeekKey != nil {
		start, err := schedule.ParseWeekKey(*req.WeekKey)
		if err != nil {
			uc.logger.Warn("GetWeekSchedule: invalid week key %q", *req.WeekKey)
			return nil, fmt.Errorf("%w: %v", ErrInvalidWeekKey, err)
		}
		week = schedule.ComputeWeek(start, uc.weekStartDay)
	} else {
		week = schedule.ComputeWeek(uc.timeProvider.Now(), uc.weekStartDay)
	}

	uc.logger.Info("GetWeekSchedule: room=%s, week=%s, viewer=%s",
		req.RoomID, week.Key, ptr.Deref(req.ViewerID))

	// Пробуем кеш: расписание идемпотентно по (room, weekKey, viewer)
	if uc.cache != nil {
		var cached Response
		err := uc.cache.Get(ctx, req.RoomID, week.Key, ptr.Deref(req.ViewerID), &cached)
		if err == nil {
			if uc.cacheMetrics != nil {
				uc.cacheMetrics.CacheHit()
			}
			uc.logger.Info("GetWeekSchedule: cache hit for room=%s, week=%s", req.RoomID, week.Key)
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			// Недоступный Redis не роняет запрос, сетка пересчитывается
			uc.logger.Warn("GetWeekSchedule: cache read failed for room=%s, week=%s: %v",
				req.RoomID, week.Key, err)
		}
		if uc.cacheMetrics != nil {
			uc.cacheMetrics.CacheMiss()
		}
	}

	// Получаем комнату с её часами работы
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetWeekSchedule: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetWeekSchedule: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Получаем чеки недели
	checks, err := uc.checkRepo.GetByRoomAndWeek(ctx, domain.WeekChecksFilter{
		RoomID:    req.RoomID,
		WeekStart: week.Start(),
	})
	if err != nil {
		uc.logger.Error("GetWeekSchedule: failed to get checks for room=%s, week=%s: %v",
			req.RoomID, week.Key, err)
		return nil, fmt.Errorf("%w: failed to get checks: %v", ErrInternal, err)
	}

	// Собираем классифицированную сетку
	times, days := buildGrid(room, week, checks, req.ViewerID, uc.stepMinutes)

	prevKey, err := schedule.ShiftWeek(week.Key, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to shift week: %v", ErrInternal, err)
	}
	nextKey, err := schedule.ShiftWeek(week.Key, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to shift week: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:       room.ID,
		RoomLocation: room.Location,
		WeekKey:      week.Key,
		PrevWeekKey:  prevKey,
		NextWeekKey:  nextKey,
		Dates:        week.Dates,
		Times:        times,
		Days:         days,
		StepMinutes:  uc.stepMinutes,
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.RoomID, week.Key, ptr.Deref(req.ViewerID), resp); err != nil {
			uc.logger.Warn("GetWeekSchedule: cache write failed for room=%s, week=%s: %v",
				req.RoomID, week.Key, err)
		}
	}

	uc.logger.Info("GetWeekSchedule: built grid for room=%s, week=%s: %d times x %d days, %d checks",
		req.RoomID, week.Key, len(times), len(days), len(checks))

	return resp, nil
}
