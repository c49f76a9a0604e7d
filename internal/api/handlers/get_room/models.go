package get_room

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/service/rooms/models"
)

// RoomResponse модель комнаты в JSON-ответе
type RoomResponse struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в JSON-модель
func FromServiceResponse(room *models.RoomResponse) *RoomResponse {
	return &RoomResponse{
		ID:        room.ID,
		Location:  room.Location,
		OpenTime:  room.OpenTime.Format(time.RFC3339),
		CloseTime: room.CloseTime.Format(time.RFC3339),
		CreatedAt: room.CreatedAt.Format(time.RFC3339),
		UpdatedAt: room.UpdatedAt.Format(time.RFC3339),
	}
}
