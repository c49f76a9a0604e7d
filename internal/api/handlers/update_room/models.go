package update_room

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/service/rooms/models"
)

// UpdateRoomRequest тело запроса на частичное обновление комнаты.
// Отсутствующие поля не изменяются.
type UpdateRoomRequest struct {
	Location  *string `json:"location,omitempty"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// ToServiceRequest конвертирует JSON-запрос в запрос сервиса
func (r *UpdateRoomRequest) ToServiceRequest(roomID string) (*models.UpdateRoomRequest, error) {
	req := &models.UpdateRoomRequest{
		ID:       roomID,
		Location: r.Location,
	}

	if r.OpenTime != nil {
		openTime, err := time.Parse(time.RFC3339, *r.OpenTime)
		if err != nil {
			return nil, err
		}
		req.OpenTime = &openTime
	}

	if r.CloseTime != nil {
		closeTime, err := time.Parse(time.RFC3339, *r.CloseTime)
		if err != nil {
			return nil, err
		}
		req.CloseTime = &closeTime
	}

	return req, nil
}

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
