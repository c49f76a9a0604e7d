package models

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Location  string
	OpenTime  time.Time
	CloseTime time.Time
}

// UpdateRoomRequest запрос на частичное обновление комнаты
type UpdateRoomRequest struct {
	ID        string
	Location  *string
	OpenTime  *time.Time
	CloseTime *time.Time
}

// RoomResponse модель комнаты для вызывающего слоя
type RoomResponse struct {
	ID        string
	Location  string
	OpenTime  time.Time
	CloseTime time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []RoomResponse
}

// FromDomainRoom конвертирует доменную комнату в ответ сервиса
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:        room.ID,
		Location:  room.Location,
		OpenTime:  room.OpenTime,
		CloseTime: room.CloseTime,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список доменных комнат
func FromDomainRoomList(rooms []domain.Room) *RoomListResponse {
	out := make([]RoomResponse, len(rooms))
	for i := range rooms {
		out[i] = *FromDomainRoom(&rooms[i])
	}
	return &RoomListResponse{Rooms: out}
}
