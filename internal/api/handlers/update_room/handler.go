package update_room

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/service/rooms"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidTimes  = "некорректный формат времени, ожидается RFC3339"
	msgInvalidRoom   = "некорректные данные комнаты"
	msgRoomNotFound  = "комната не найдена"
	msgMissingRoomID = "не указан идентификатор комнаты"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	if roomID == "" {
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /rooms/{roomId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(roomID)
	if err != nil {
		h.logger.Warn("PUT /rooms/{roomId} - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{roomId} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{roomId} - Invalid request: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidRoom)

		default:
			h.logger.Error("PUT /rooms/{roomId} - Failed to update room: room_id=%s, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{roomId} - Room updated: room_id=%s", roomID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
