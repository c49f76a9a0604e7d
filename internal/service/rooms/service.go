package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	roomRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/room"
	"github.com/stevenluongo/bna-wellness/internal/service/rooms/models"
)

// Service сервис для работы с комнатами студии
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новую комнату.
// Часы работы не валидируются на openTime < closeTime: комната с пустым
// рабочим днём допустима и просто не имеет доступных слотов.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if req.Location == "" {
		s.logger.Warn("Create: empty room location")
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.OpenTime.IsZero() || req.CloseTime.IsZero() {
		s.logger.Warn("Create: missing operating hours for location=%s", req.Location)
		return nil, fmt.Errorf("%w: openTime and closeTime are required", ErrInvalidInput)
	}

	room, err := s.roomRepo.Create(ctx, &domain.Room{
		Location:  req.Location,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		s.logger.Error("Create: repository error for location=%s: %v", req.Location, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room created id=%s, location=%s", room.ID, room.Location)
	return models.FromDomainRoom(room), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает все комнаты студии
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Update обновляет указанные поля комнаты и возвращает её новое состояние
func (s *Service) Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	if req.Location == nil && req.OpenTime == nil && req.CloseTime == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	err := s.roomRepo.Update(ctx, req.ID, domain.RoomUpdate{
		Location:  req.Location,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", req.ID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.GetByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("Update: failed to re-read room id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room id=%s updated", req.ID)
	return models.FromDomainRoom(room), nil
}

// Delete удаляет комнату вместе с её чеками
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%s not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room id=%s deleted", id)
	return nil
}
