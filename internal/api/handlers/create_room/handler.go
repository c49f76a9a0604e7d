package create_room

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/service/rooms"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidTimes = "некорректный формат времени, ожидается RFC3339"
	msgInvalidRoom  = "некорректные данные комнаты"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /rooms - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoom)

		default:
			h.logger.Error("POST /rooms - Failed to create room: location=%s, error=%v",
				req.Location, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: id=%s, location=%s", result.ID, result.Location)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
