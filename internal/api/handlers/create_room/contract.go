package create_room

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/service/rooms/models"
)

type RoomsService interface {
	Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
