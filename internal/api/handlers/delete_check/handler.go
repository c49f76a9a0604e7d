package delete_check

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/api/middleware"
	"github.com/stevenluongo/bna-wellness/internal/service/checks"
)

const (
	msgCheckNotFound    = "чек не найден"
	msgAccessDenied     = "нельзя удалить чужой чек"
	msgMissingCheckID   = "не указан идентификатор чека"
	msgMissingTrainerID = "не определён тренер запроса"
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

// Handle DELETE /api/v1/checks/{checkId}
// Удалить чек может только тренер-владелец
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /checks/{checkId} - Missing trainer ID in context")
		handlers.RespondBadRequest(w, msgMissingTrainerID)
		return
	}

	checkID := mux.Vars(r)["checkId"]
	if checkID == "" {
		handlers.RespondBadRequest(w, msgMissingCheckID)
		return
	}

	if err := h.service.Delete(r.Context(), checkID, trainerID); err != nil {
		switch {
		case errors.Is(err, checks.ErrCheckNotFound):
			h.logger.Warn("DELETE /checks/{checkId} - Check not found: check_id=%s", checkID)
			handlers.RespondNotFound(w, msgCheckNotFound)

		case errors.Is(err, checks.ErrAccessDenied):
			h.logger.Warn("DELETE /checks/{checkId} - Access denied: check_id=%s, trainer_id=%s",
				checkID, trainerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /checks/{checkId} - Failed to delete check: check_id=%s, error=%v",
				checkID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /checks/{checkId} - Check deleted: check_id=%s, trainer_id=%s",
		checkID, trainerID)
	w.WriteHeader(http.StatusNoContent)
}
