package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BRB-ScheduleService/internal/service/schedule"
	"github.com/m04kA/BRB-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствуют заголовки идентификации"
	msgAccessDenied       = "обновление расписания доступно только администратору"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	SlotIntervalMinutes int                `json:"slotIntervalMinutes"`
	Days                []models.DayUpdate `json:"days"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeek(r.Context(), &models.UpdateWeekRequest{
		Actor:               actor,
		SlotIntervalMinutes: req.SlotIntervalMinutes,
		Days:                req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrValidation):
			h.logger.Warn("PUT /schedule - Validation failed: %v", err)
			// текст ошибки называет проблемный день недели
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /schedule - Access denied: actor=%d", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /schedule - Failed to update schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule updated by actor=%d", actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
