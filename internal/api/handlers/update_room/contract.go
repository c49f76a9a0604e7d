package update_room

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/service/rooms/models"
)

type RoomsService interface {
	Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
