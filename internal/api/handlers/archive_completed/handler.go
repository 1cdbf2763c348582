package archive_completed

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BRB-ScheduleService/internal/service/bookings"
)

const (
	msgMissingIdentity = "отсутствуют заголовки идентификации"
	msgAccessDenied    = "архивация доступна только администратору"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/archive-completed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	result, err := h.service.ArchiveCompletedToday(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/archive-completed - Access denied: actor=%d", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /bookings/archive-completed - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/archive-completed - Archived %d bookings", result.Archived)
	handlers.RespondJSON(w, http.StatusOK, result)
}
