package delete_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/service/rooms"
)

const (
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

// Handle DELETE /api/v1/rooms/{roomId}
// Чеки комнаты удаляются каскадно на уровне БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	if roomID == "" {
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{roomId} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("DELETE /rooms/{roomId} - Failed to delete room: room_id=%s, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{roomId} - Room deleted: room_id=%s", roomID)
	w.WriteHeader(http.StatusNoContent)
}
