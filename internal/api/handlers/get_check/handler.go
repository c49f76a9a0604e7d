package get_check

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
	"github.com/stevenluongo/bna-wellness/internal/service/checks"
)

const (
	msgCheckNotFound  = "чек не найден"
	msgMissingCheckID = "не указан идентификатор чека"
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

// Handle GET /api/v1/checks/{checkId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkID := mux.Vars(r)["checkId"]
	if checkID == "" {
		handlers.RespondBadRequest(w, msgMissingCheckID)
		return
	}

	check, err := h.service.GetByID(r.Context(), checkID)
	if err != nil {
		switch {
		case errors.Is(err, checks.ErrCheckNotFound):
			h.logger.Warn("GET /checks/{checkId} - Check not found: check_id=%s", checkID)
			handlers.RespondNotFound(w, msgCheckNotFound)

		default:
			h.logger.Error("GET /checks/{checkId} - Failed to get check: check_id=%s, error=%v",
				checkID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(check))
}
