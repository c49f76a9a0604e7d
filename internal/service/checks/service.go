package checks

import (
	"context"
	"errors"
	"fmt"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	checkRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/check"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
	"github.com/stevenluongo/bna-wellness/internal/service/checks/models"
)

// Service сервис для работы с чеками
type Service struct {
	checkRepo CheckRepository
	cache     ScheduleCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса чеков.
// cache может быть nil, если кеширование расписаний выключено.
func NewService(checkRepo CheckRepository, cache ScheduleCache, logger Logger) *Service {
	return &Service{
		checkRepo: checkRepo,
		cache:     cache,
		logger:    logger,
	}
}

// GetByID получает чек по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CheckResponse, error) {
	check, err := s.checkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, checkRepo.ErrCheckNotFound) {
			s.logger.Warn("GetByID: check id=%s not found", id)
			return nil, ErrCheckNotFound
		}
		s.logger.Error("GetByID: repository error for check id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCheck(check), nil
}

// GetWeekChecks получает чеки комнаты за неделю, опционально по тренеру
func (s *Service) GetWeekChecks(ctx context.Context, req *models.GetWeekChecksRequest) (*models.CheckListResponse, error) {
	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	weekStart, err := schedule.ParseWeekKey(req.WeekKey)
	if err != nil {
		s.logger.Warn("GetWeekChecks: invalid week key %q", req.WeekKey)
		return nil, fmt.Errorf("%w: invalid week key", ErrInvalidInput)
	}

	checks, err := s.checkRepo.GetByRoomAndWeek(ctx, domain.WeekChecksFilter{
		RoomID:    req.RoomID,
		WeekStart: weekStart,
		TrainerID: req.TrainerID,
	})
	if err != nil {
		s.logger.Error("GetWeekChecks: repository error for room=%s, week=%s: %v", req.RoomID, req.WeekKey, err)
		return nil, fmt.Errorf("%w: GetWeekChecks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeekChecks: fetched %d checks for room=%s, week=%s", len(checks), req.RoomID, req.WeekKey)
	return models.FromDomainCheckList(checks), nil
}

// Delete удаляет чек. Тренер может удалить только собственный чек.
// После подтверждённого удаления инвалидирует кеш расписания недели.
func (s *Service) Delete(ctx context.Context, id string, trainerID string) error {
	check, err := s.checkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, checkRepo.ErrCheckNotFound) {
			s.logger.Warn("Delete: check id=%s not found", id)
			return ErrCheckNotFound
		}
		s.logger.Error("Delete: repository error for check id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !check.IsOwnedBy(trainerID) {
		s.logger.Warn("Delete: trainer=%s attempted to delete check id=%s owned by trainer=%s",
			trainerID, id, check.TrainerID)
		return ErrAccessDenied
	}

	if err := s.checkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, checkRepo.ErrCheckNotFound) {
			return ErrCheckNotFound
		}
		s.logger.Error("Delete: repository error for check id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		weekKey := schedule.TimeKey(check.WeekStart)
		if err := s.cache.Invalidate(ctx, check.RoomID, weekKey); err != nil {
			// Кеш с TTL, устаревшая запись доживёт до истечения срока
			s.logger.Warn("Delete: failed to invalidate schedule cache for room=%s, week=%s: %v",
				check.RoomID, weekKey, err)
		}
	}

	s.logger.Info("Delete: check id=%s deleted by trainer=%s", id, trainerID)
	return nil
}
