package get_room

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/service/rooms/models"
)

type RoomsService interface {
	GetByID(ctx context.Context, id string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
