package list_rooms

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

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromServiceResponse конвертирует ответ сервиса в JSON-модель
func FromServiceResponse(list *models.RoomListResponse) *RoomListResponse {
	out := make([]RoomResponse, len(list.Rooms))
	for i := range list.Rooms {
		room := &list.Rooms[i]
		out[i] = RoomResponse{
			ID:        room.ID,
			Location:  room.Location,
			OpenTime:  room.OpenTime.Format(time.RFC3339),
			CloseTime: room.CloseTime.Format(time.RFC3339),
			CreatedAt: room.CreatedAt.Format(time.RFC3339),
			UpdatedAt: room.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &RoomListResponse{Rooms: out}
}
