package get_week_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/api/middleware"
	getWeekSchedule "github.com/stevenluongo/bna-wellness/internal/usecase/get_week_schedule"
)

const (
	msgMissingRoomID  = "некорректный ID комнаты"
	msgInvalidWeekKey = "некорректный ключ недели"
	msgInvalidScope   = "некорректный scope, ожидается all или mine"
	msgRoomNotFound   = "комната не найдена"
)

type Handler struct {
	useCase GetWeekScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/schedule
// Query params: week (optional, ключ недели), scope (optional, all|mine,
// по умолчанию mine - сетка глазами запрашивающего тренера)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID := vars["roomId"]
	if roomID == "" {
		h.logger.Warn("GET /rooms/{id}/schedule - Missing room ID")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	// Неделя опциональна: без неё берётся текущая
	var weekKey *string
	if v := r.URL.Query().Get("week"); v != "" {
		weekKey = &v
	}

	// Видимость чеков: mine - только собственные чеки тренера блокируют
	// сетку, all - чеки всех тренеров
	var viewerID *string
	scope := r.URL.Query().Get("scope")
	switch scope {
	case "", "mine":
		if userID, ok := middleware.UserID(r.Context()); ok {
			viewerID = &userID
		}
	case "all":
		viewerID = nil
	default:
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid scope: %s", scope)
		handlers.RespondBadRequest(w, msgInvalidScope)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekSchedule.Request{
		RoomID:   roomID,
		WeekKey:  weekKey,
		ViewerID: viewerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSchedule.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/schedule - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getWeekSchedule.ErrInvalidWeekKey),
			errors.Is(err, getWeekSchedule.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/schedule - Invalid request: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekKey)

		default:
			h.logger.Error("GET /rooms/{id}/schedule - Failed to build schedule: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/schedule - Schedule built: room_id=%s, week=%s", roomID, result.WeekKey)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
