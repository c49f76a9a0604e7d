package get_week_checks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/api/middleware"
	"github.com/stevenluongo/bna-wellness/internal/service/checks"
	"github.com/stevenluongo/bna-wellness/internal/service/checks/models"
)

const (
	msgMissingRoomID = "некорректный ID комнаты"
	msgMissingWeek   = "не указан ключ недели"
	msgInvalidScope  = "некорректный scope, ожидается all или mine"
	msgInvalidWeek   = "некорректный ключ недели"
)

type Handler struct {
	service ChecksService
	logger  Logger
}

func NewHandler(service ChecksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/weeks/{week}/checks
// Query params: scope (optional, all|mine, по умолчанию all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID := vars["roomId"]
	if roomID == "" {
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	weekKey := vars["week"]
	if weekKey == "" {
		handlers.RespondBadRequest(w, msgMissingWeek)
		return
	}

	var trainerID *string
	scope := r.URL.Query().Get("scope")
	switch scope {
	case "", "all":
		trainerID = nil
	case "mine":
		if userID, ok := middleware.UserID(r.Context()); ok {
			trainerID = &userID
		}
	default:
		h.logger.Warn("GET /rooms/{id}/weeks/{week}/checks - Invalid scope: %s", scope)
		handlers.RespondBadRequest(w, msgInvalidScope)
		return
	}

	result, err := h.service.GetWeekChecks(r.Context(), &models.GetWeekChecksRequest{
		RoomID:    roomID,
		WeekKey:   weekKey,
		TrainerID: trainerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checks.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/weeks/{week}/checks - Invalid request: room_id=%s, week=%s, error=%v",
				roomID, weekKey, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /rooms/{id}/weeks/{week}/checks - Failed to get checks: room_id=%s, week=%s, error=%v",
				roomID, weekKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(roomID, weekKey, result))
}
