package create_check

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/api/middleware"
	createCheck "github.com/stevenluongo/bna-wellness/internal/usecase/create_check"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidTimes     = "некорректный формат времени, ожидается RFC3339"
	msgRoomNotFound     = "комната не найдена"
	msgTrainerNotFound  = "тренер не найден"
	msgClientNotFound   = "клиент не найден"
	msgSlotBlocked      = "слот уже занят"
	msgOutsideHours     = "интервал выходит за часы работы комнаты"
	msgInvalidInterval  = "некорректный интервал чека"
	msgMissingTrainerID = "не определён тренер запроса"
)

type Handler struct {
	useCase CreateCheckUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checks
// Тренер-владелец берётся из заголовка аутентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /checks - Missing trainer ID in context")
		handlers.RespondBadRequest(w, msgMissingTrainerID)
		return
	}

	var req CreateCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /checks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(trainerID)
	if err != nil {
		h.logger.Warn("POST /checks - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCheck.ErrRoomNotFound):
			h.logger.Warn("POST /checks - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createCheck.ErrTrainerNotFound):
			h.logger.Warn("POST /checks - Trainer not found: trainer_id=%s", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createCheck.ErrClientNotFound):
			h.logger.Warn("POST /checks - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createCheck.ErrSlotBlocked):
			h.logger.Warn("POST /checks - Slot blocked: trainer_id=%s, room_id=%s, start=%s",
				trainerID, req.RoomID, req.StartTime)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, createCheck.ErrOutsideOperatingHours):
			h.logger.Warn("POST /checks - Outside operating hours: room_id=%s, start=%s",
				req.RoomID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createCheck.ErrInvalidInterval),
			errors.Is(err, createCheck.ErrInvalidInput):
			h.logger.Warn("POST /checks - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /checks - Failed to create check: trainer_id=%s, room_id=%s, error=%v",
				trainerID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checks - Check created: id=%s, trainer_id=%s, room_id=%s",
		result.ID, trainerID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
